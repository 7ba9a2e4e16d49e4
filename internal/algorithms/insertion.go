package algorithms

import "github.com/san-kum/sortlab/internal/sorting"

type Insertion struct{}

func NewInsertion() *Insertion {
	return &Insertion{}
}

func (s *Insertion) Algorithm() sorting.Algorithm { return sorting.Insertion }

// Animate holds a[i] aside, shifts larger elements one slot right (each
// shift counts as a swap) and drops the key into the gap.
func (s *Insertion) Animate(t *sorting.Tracer) error {
	for i := 1; i < t.Len(); i++ {
		key := t.At(i)
		j := i - 1

		for j >= 0 {
			if err := t.Compare(j, j+1); err != nil {
				return err
			}
			if t.Value(j) <= key.Value {
				t.Mark(sorting.Normal, j, j+1)
				break
			}
			if err := t.Put(j+1, t.At(j)); err != nil {
				return err
			}
			t.Mark(sorting.Normal, j, j+1)
			j--
		}

		t.Place(j+1, key)
	}
	return t.Finish()
}

func (s *Insertion) Count(values []int) sorting.Counts {
	a := clone(values)
	var c sorting.Counts
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 {
			c.Comparisons++
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			c.Swaps++
			j--
		}
		a[j+1] = key
	}
	return c
}
