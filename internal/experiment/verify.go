package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/san-kum/sortlab/internal/sorting"
)

// Ensemble checks every registered sorter against many random arrays in
// parallel. Trial i uses seed seedStart+i, so a failure can be replayed.
type Ensemble struct {
	registry  *Registry
	numRuns   int
	seedStart int64
	workers   int
}

func NewEnsemble(r *Registry, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{registry: r, numRuns: numRuns, seedStart: seedStart, workers: 4}
}

// Mismatch describes one failed trial.
type Mismatch struct {
	Algorithm sorting.Algorithm
	Seed      int64
	Input     []int
	Reason    string
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("%s seed=%d: %s", m.Algorithm, m.Seed, m.Reason)
}

type Report struct {
	Trials     int
	Checks     int
	Mismatches []Mismatch
}

func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Run sorts one array per trial with each algorithm and checks that the
// animated output is the sorted permutation of the input, that the final
// element states are all Sorted and that animated counts equal the twin's.
func (e *Ensemble) Run(ctx context.Context, size int) (Report, error) {
	if size < 0 {
		return Report{}, fmt.Errorf("%w: %d", sorting.ErrInvalidSize, size)
	}
	algs := e.registry.List()
	found := make([][]Mismatch, e.numRuns)
	errs := make([]error, e.numRuns)

	ParallelFor(e.numRuns, e.workers, func(start, end int) {
		for idx := start; idx < end; idx++ {
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			seed := e.seedStart + int64(idx)
			vals, err := GenerateValues(rand.New(rand.NewSource(seed)), size, Random)
			if err != nil {
				errs[idx] = err
				return
			}
			for _, a := range algs {
				sorter, err := e.registry.Get(a)
				if err != nil {
					errs[idx] = err
					return
				}
				if reason := check(sorter, vals); reason != "" {
					found[idx] = append(found[idx], Mismatch{Algorithm: a, Seed: seed, Input: vals, Reason: reason})
				}
			}
		}
	})

	for _, err := range errs {
		if err != nil {
			return Report{}, err
		}
	}

	rep := Report{Trials: e.numRuns, Checks: e.numRuns * len(algs)}
	for _, m := range found {
		rep.Mismatches = append(rep.Mismatches, m...)
	}
	return rep, nil
}

func check(s sorting.Sorter, input []int) (reason string) {
	defer func() {
		if r := recover(); r != nil {
			reason = fmt.Sprintf("panic: %v", r)
		}
	}()

	arr := sorting.NewArray(input)
	var last sorting.Step
	if err := s.Animate(sorting.NewTracer(arr, func(st sorting.Step) error {
		last = st
		return nil
	})); err != nil {
		return err.Error()
	}

	want := slices.Clone(input)
	slices.Sort(want)
	switch {
	case !slices.Equal(arr.Values(), want):
		return "output is not the sorted input"
	case arr.CountState(sorting.Sorted) != len(arr):
		return "not every element is marked sorted"
	case last.Kind != sorting.StepDone:
		return "last step is not done"
	case last.Counts != s.Count(input):
		return fmt.Sprintf("animated counts %+v differ from benchmark counts %+v", last.Counts, s.Count(input))
	}
	return ""
}

// ParallelFor executes fn over [0, n) split into at most workers chunks.
func ParallelFor(n, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if n < workers {
		workers = n
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
