package algorithms

import "github.com/san-kum/sortlab/internal/sorting"

// Merge is a top-down merge sort through temporary left/right buffers.
// Every write back into the array counts as a swap.
type Merge struct{}

func NewMerge() *Merge {
	return &Merge{}
}

func (m *Merge) Algorithm() sorting.Algorithm { return sorting.Merge }

func (m *Merge) Animate(t *sorting.Tracer) error {
	if err := m.animate(t, 0, t.Len()-1); err != nil {
		return err
	}
	return t.Finish()
}

func (m *Merge) animate(t *sorting.Tracer, left, right int) error {
	if left >= right {
		return nil
	}
	mid := (left + right) / 2
	if err := m.animate(t, left, mid); err != nil {
		return err
	}
	if err := m.animate(t, mid+1, right); err != nil {
		return err
	}
	return m.merge(t, left, mid, right)
}

func (m *Merge) merge(t *sorting.Tracer, left, mid, right int) error {
	lbuf := make([]sorting.Element, 0, mid-left+1)
	for k := left; k <= mid; k++ {
		lbuf = append(lbuf, t.At(k))
	}
	rbuf := make([]sorting.Element, 0, right-mid)
	for k := mid + 1; k <= right; k++ {
		rbuf = append(rbuf, t.At(k))
	}

	i, j, k := 0, 0, left
	for i < len(lbuf) && j < len(rbuf) {
		li, ri := left+i, mid+1+j
		if err := t.Compare(li, ri); err != nil {
			return err
		}

		var next sorting.Element
		if lbuf[i].Value <= rbuf[j].Value {
			next = lbuf[i]
			i++
		} else {
			next = rbuf[j]
			j++
		}
		if err := t.Put(k, next); err != nil {
			return err
		}
		t.Mark(sorting.Normal, li, ri, k)
		k++
	}

	for ; i < len(lbuf); i++ {
		if err := t.Put(k, lbuf[i]); err != nil {
			return err
		}
		t.Mark(sorting.Normal, k)
		k++
	}
	for ; j < len(rbuf); j++ {
		if err := t.Put(k, rbuf[j]); err != nil {
			return err
		}
		t.Mark(sorting.Normal, k)
		k++
	}
	return nil
}

func (m *Merge) Count(values []int) sorting.Counts {
	a := clone(values)
	var c sorting.Counts

	merge := func(left, mid, right int) {
		lbuf := clone(a[left : mid+1])
		rbuf := clone(a[mid+1 : right+1])

		i, j, k := 0, 0, left
		for i < len(lbuf) && j < len(rbuf) {
			c.Comparisons++
			if lbuf[i] <= rbuf[j] {
				a[k] = lbuf[i]
				i++
			} else {
				a[k] = rbuf[j]
				j++
			}
			c.Swaps++
			k++
		}
		for ; i < len(lbuf); i++ {
			a[k] = lbuf[i]
			c.Swaps++
			k++
		}
		for ; j < len(rbuf); j++ {
			a[k] = rbuf[j]
			c.Swaps++
			k++
		}
	}

	var sort func(left, right int)
	sort = func(left, right int) {
		if left >= right {
			return
		}
		mid := (left + right) / 2
		sort(left, mid)
		sort(mid+1, right)
		merge(left, mid, right)
	}

	sort(0, len(a)-1)
	return c
}
