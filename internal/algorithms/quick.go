package algorithms

import "github.com/san-kum/sortlab/internal/sorting"

// Quick is a recursive quick sort with Lomuto partitioning around the last
// element. Swaps of an element with itself are skipped and not counted.
type Quick struct{}

func NewQuick() *Quick {
	return &Quick{}
}

func (q *Quick) Algorithm() sorting.Algorithm { return sorting.Quick }

func (q *Quick) Animate(t *sorting.Tracer) error {
	if err := q.animate(t, 0, t.Len()-1); err != nil {
		return err
	}
	return t.Finish()
}

func (q *Quick) animate(t *sorting.Tracer, low, high int) error {
	if low >= high {
		return nil
	}
	p, err := q.partition(t, low, high)
	if err != nil {
		return err
	}
	if err := q.animate(t, low, p-1); err != nil {
		return err
	}
	return q.animate(t, p+1, high)
}

func (q *Quick) partition(t *sorting.Tracer, low, high int) (int, error) {
	pivot := t.Value(high)
	i := low - 1

	for j := low; j < high; j++ {
		if err := t.Compare(j, high); err != nil {
			return 0, err
		}
		if t.Value(j) <= pivot {
			i++
			if i != j {
				if err := t.Swap(i, j); err != nil {
					return 0, err
				}
			}
		}
		t.Mark(sorting.Normal, j)
		if i >= low {
			t.Mark(sorting.Normal, i)
		}
	}

	if i+1 != high {
		if err := t.Swap(i+1, high); err != nil {
			return 0, err
		}
		t.Mark(sorting.Normal, high)
	}
	t.Mark(sorting.Sorted, i+1)
	return i + 1, nil
}

func (q *Quick) Count(values []int) sorting.Counts {
	a := clone(values)
	var c sorting.Counts

	var partition func(low, high int) int
	partition = func(low, high int) int {
		pivot := a[high]
		i := low - 1
		for j := low; j < high; j++ {
			c.Comparisons++
			if a[j] <= pivot {
				i++
				if i != j {
					a[i], a[j] = a[j], a[i]
					c.Swaps++
				}
			}
		}
		if i+1 != high {
			a[i+1], a[high] = a[high], a[i+1]
			c.Swaps++
		}
		return i + 1
	}

	var sort func(low, high int)
	sort = func(low, high int) {
		if low < high {
			p := partition(low, high)
			sort(low, p-1)
			sort(p+1, high)
		}
	}

	sort(0, len(a)-1)
	return c
}
