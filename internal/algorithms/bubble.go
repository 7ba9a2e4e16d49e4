package algorithms

import "github.com/san-kum/sortlab/internal/sorting"

type Bubble struct{}

func NewBubble() *Bubble {
	return &Bubble{}
}

func (b *Bubble) Algorithm() sorting.Algorithm { return sorting.Bubble }

// Animate bubbles the largest unsorted element to the end of each pass and
// stops after the first pass without a swap.
func (b *Bubble) Animate(t *sorting.Tracer) error {
	n := t.Len()
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if err := t.Compare(j, j+1); err != nil {
				return err
			}
			if t.Value(j) > t.Value(j+1) {
				if err := t.Swap(j, j+1); err != nil {
					return err
				}
				swapped = true
			}
			t.Mark(sorting.Normal, j, j+1)
		}
		t.Mark(sorting.Sorted, n-i-1)
		if !swapped {
			break
		}
	}
	return t.Finish()
}

func (b *Bubble) Count(values []int) sorting.Counts {
	a := clone(values)
	var c sorting.Counts
	n := len(a)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			c.Comparisons++
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				c.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return c
}
