package algorithms

import "github.com/san-kum/sortlab/internal/sorting"

// Heap builds a max-heap bottom-up and repeatedly moves the root to the end.
// The root swap is counted even when it exchanges equal values.
type Heap struct{}

func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) Algorithm() sorting.Algorithm { return sorting.Heap }

func (h *Heap) Animate(t *sorting.Tracer) error {
	n := t.Len()
	for i := n/2 - 1; i >= 0; i-- {
		if err := h.heapify(t, n, i); err != nil {
			return err
		}
	}

	for i := n - 1; i > 0; i-- {
		if err := t.Swap(0, i); err != nil {
			return err
		}
		t.Mark(sorting.Sorted, i)
		t.Mark(sorting.Normal, 0)
		if err := h.heapify(t, i, 0); err != nil {
			return err
		}
	}
	return t.Finish()
}

func (h *Heap) heapify(t *sorting.Tracer, n, i int) error {
	largest := i
	left, right := 2*i+1, 2*i+2

	t.Mark(sorting.Comparing, i)
	if left < n {
		if err := t.Compare(left, largest); err != nil {
			return err
		}
		if t.Value(left) > t.Value(largest) {
			largest = left
		}
		t.Mark(sorting.Normal, left)
	}
	if right < n {
		if err := t.Compare(right, largest); err != nil {
			return err
		}
		if t.Value(right) > t.Value(largest) {
			largest = right
		}
		t.Mark(sorting.Normal, left, right)
	}

	if largest == i {
		t.Mark(sorting.Normal, i)
		return nil
	}
	if err := t.Swap(i, largest); err != nil {
		return err
	}
	t.Mark(sorting.Normal, i, largest)
	return h.heapify(t, n, largest)
}

func (h *Heap) Count(values []int) sorting.Counts {
	a := clone(values)
	var c sorting.Counts
	n := len(a)

	var heapify func(n, i int)
	heapify = func(n, i int) {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n {
			c.Comparisons++
			if a[left] > a[largest] {
				largest = left
			}
		}
		if right < n {
			c.Comparisons++
			if a[right] > a[largest] {
				largest = right
			}
		}
		if largest != i {
			a[i], a[largest] = a[largest], a[i]
			c.Swaps++
			heapify(n, largest)
		}
	}

	for i := n/2 - 1; i >= 0; i-- {
		heapify(n, i)
	}
	for i := n - 1; i > 0; i-- {
		a[0], a[i] = a[i], a[0]
		c.Swaps++
		heapify(i, 0)
	}
	return c
}
