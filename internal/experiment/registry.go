package experiment

import (
	"fmt"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/sorting"
)

type Registry struct {
	sorters map[sorting.Algorithm]func() sorting.Sorter
}

func NewRegistry() *Registry {
	r := &Registry{
		sorters: make(map[sorting.Algorithm]func() sorting.Sorter),
	}

	r.sorters[sorting.Bubble] = func() sorting.Sorter { return algorithms.NewBubble() }
	r.sorters[sorting.Quick] = func() sorting.Sorter { return algorithms.NewQuick() }
	r.sorters[sorting.Merge] = func() sorting.Sorter { return algorithms.NewMerge() }
	r.sorters[sorting.Insertion] = func() sorting.Sorter { return algorithms.NewInsertion() }
	r.sorters[sorting.Selection] = func() sorting.Sorter { return algorithms.NewSelection() }
	r.sorters[sorting.Heap] = func() sorting.Sorter { return algorithms.NewHeap() }

	return r
}

// Register adds or replaces the factory for a.
func (r *Registry) Register(a sorting.Algorithm, fn func() sorting.Sorter) {
	r.sorters[a] = fn
}

func (r *Registry) Get(a sorting.Algorithm) (sorting.Sorter, error) {
	fn, ok := r.sorters[a]
	if !ok {
		return nil, fmt.Errorf("%w: %v", sorting.ErrUnknownAlgorithm, a)
	}
	return fn(), nil
}

// Lookup resolves a tag or display name.
func (r *Registry) Lookup(name string) (sorting.Sorter, error) {
	a, err := sorting.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return r.Get(a)
}

// List returns the registered algorithms in declaration order.
func (r *Registry) List() []sorting.Algorithm {
	out := make([]sorting.Algorithm, 0, len(r.sorters))
	for _, a := range sorting.Algorithms() {
		if _, ok := r.sorters[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Sorters resolves each algorithm, dropping repeats.
func (r *Registry) Sorters(algs []sorting.Algorithm) ([]sorting.Sorter, error) {
	seen := make(map[sorting.Algorithm]bool, len(algs))
	out := make([]sorting.Sorter, 0, len(algs))
	for _, a := range algs {
		if seen[a] {
			continue
		}
		seen[a] = true
		s, err := r.Get(a)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
