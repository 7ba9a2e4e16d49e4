// Package algorithms implements the six sorts behind sortlab.
//
// Every type satisfies [sorting.Sorter] with two variants of the same
// logic: Animate drives a [sorting.Tracer] and reports each comparison,
// swap and write, while Count runs on a private copy of plain ints and
// only tallies. Both use the same comparisons and tie-break rules, so they
// report identical counts for identical input.
package algorithms

import (
	"fmt"

	"github.com/san-kum/sortlab/internal/sorting"
)

// New returns the implementation of a.
func New(a sorting.Algorithm) (sorting.Sorter, error) {
	switch a {
	case sorting.Bubble:
		return NewBubble(), nil
	case sorting.Quick:
		return NewQuick(), nil
	case sorting.Merge:
		return NewMerge(), nil
	case sorting.Insertion:
		return NewInsertion(), nil
	case sorting.Selection:
		return NewSelection(), nil
	case sorting.Heap:
		return NewHeap(), nil
	}
	return nil, fmt.Errorf("%w: %v", sorting.ErrUnknownAlgorithm, a)
}

// All returns one sorter per algorithm in declaration order.
func All() []sorting.Sorter {
	algs := sorting.Algorithms()
	out := make([]sorting.Sorter, 0, len(algs))
	for _, a := range algs {
		s, _ := New(a)
		out = append(out, s)
	}
	return out
}

func clone(values []int) []int {
	c := make([]int, len(values))
	copy(c, values)
	return c
}
