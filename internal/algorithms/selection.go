package algorithms

import "github.com/san-kum/sortlab/internal/sorting"

type Selection struct{}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Algorithm() sorting.Algorithm { return sorting.Selection }

// Animate scans for the strict minimum of the unsorted suffix and swaps it
// into place at most once per pass.
func (s *Selection) Animate(t *sorting.Tracer) error {
	n := t.Len()
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if err := t.Compare(j, minIdx); err != nil {
				return err
			}
			if t.Value(j) < t.Value(minIdx) {
				if minIdx != i {
					t.Mark(sorting.Normal, minIdx)
				}
				minIdx = j
			} else {
				t.Mark(sorting.Normal, j)
			}
		}

		if minIdx != i {
			if err := t.Swap(i, minIdx); err != nil {
				return err
			}
			t.Mark(sorting.Normal, minIdx)
		}
		t.Mark(sorting.Sorted, i)
	}
	return t.Finish()
}

func (s *Selection) Count(values []int) sorting.Counts {
	a := clone(values)
	var c sorting.Counts
	n := len(a)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			c.Comparisons++
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
			c.Swaps++
		}
	}
	return c
}
