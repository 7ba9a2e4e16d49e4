// Package experiment drives sorting sessions: array generation, animated
// runs, resets and comparisons.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/sortlab/internal/compare"
	"github.com/san-kum/sortlab/internal/sorting"
)

type Settings struct {
	Size        int
	Speed       int
	Algorithm   sorting.Algorithm
	Pattern     Pattern
	Seed        int64
	CompareSize int
	Scoring     compare.Scoring
}

func DefaultSettings() Settings {
	return Settings{
		Size:        DefaultSize,
		Speed:       DefaultSpeed,
		Algorithm:   sorting.Bubble,
		Pattern:     Random,
		CompareSize: DefaultCompareSize,
		Scoring:     compare.DefaultScoring(),
	}
}

// errStopped is returned to a sorter when the consumer of Steps quits early.
var errStopped = errors.New("experiment: consumer stopped")

// Session owns the working array and at most one active run. It is not safe
// for concurrent use; drive it from a single goroutine.
type Session struct {
	settings Settings
	registry *Registry
	logger   *slog.Logger
	rng      *rand.Rand
	now      func() time.Time

	arr     sorting.Array
	stats   sorting.Stats
	running bool
	epoch   uint64
	lastErr error
}

// NewSession creates a session and generates its first array. A nil
// registry uses NewRegistry and a nil logger discards output.
func NewSession(settings Settings, registry *Registry, logger *slog.Logger) (*Session, error) {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if settings.Size == 0 {
		settings.Size = DefaultSize
	}
	if settings.CompareSize == 0 {
		settings.CompareSize = DefaultCompareSize
	}
	if settings.Pattern == "" {
		settings.Pattern = Random
	}
	if settings.Scoring == (compare.Scoring{}) {
		settings.Scoring = compare.DefaultScoring()
	}
	settings.Speed = ClampSpeed(settings.Speed)

	if err := checkSize(settings.Size); err != nil {
		return nil, err
	}
	if _, err := ParsePattern(string(settings.Pattern)); err != nil {
		return nil, err
	}
	if _, err := registry.Get(settings.Algorithm); err != nil {
		return nil, err
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		settings: settings,
		registry: registry,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		now:      time.Now,
	}
	if err := s.generate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Settings() Settings           { return s.settings }
func (s *Session) Registry() *Registry          { return s.registry }
func (s *Session) Array() sorting.Array         { return s.arr }
func (s *Session) Stats() sorting.Stats         { return s.stats }
func (s *Session) Running() bool                { return s.running }
func (s *Session) Epoch() uint64                { return s.epoch }
func (s *Session) LastError() error             { return s.lastErr }
func (s *Session) Algorithm() sorting.Algorithm { return s.settings.Algorithm }

// Generate replaces the array with fresh values and clears the stats.
func (s *Session) Generate() error {
	if s.running {
		return sorting.ErrBusy
	}
	return s.generate()
}

func (s *Session) generate() error {
	vals, err := GenerateValues(s.rng, s.settings.Size, s.settings.Pattern)
	if err != nil {
		return err
	}
	s.arr = sorting.NewArray(vals)
	s.stats.Reset()
	s.logger.Debug("array generated", "size", len(vals), "pattern", s.settings.Pattern)
	return nil
}

// Reset discards any active run and generates a new array. A sequence
// obtained from Steps before the reset fails with ErrAborted on its next step.
func (s *Session) Reset() {
	if s.running {
		s.logger.Info("run discarded", "algorithm", s.settings.Algorithm, "steps", s.stats.Comparisons+s.stats.Swaps)
	}
	s.epoch++
	s.running = false
	s.lastErr = nil
	if err := s.generate(); err != nil {
		s.logger.Error("regenerate after reset", "err", err)
	}
}

func (s *Session) SetSize(n int) error {
	if s.running {
		return sorting.ErrBusy
	}
	if err := checkSize(n); err != nil {
		return err
	}
	s.settings.Size = n
	return s.generate()
}

func (s *Session) SetAlgorithm(a sorting.Algorithm) error {
	if s.running {
		return sorting.ErrBusy
	}
	if _, err := s.registry.Get(a); err != nil {
		return err
	}
	s.settings.Algorithm = a
	return nil
}

func (s *Session) SetPattern(p Pattern) error {
	if s.running {
		return sorting.ErrBusy
	}
	if _, err := ParsePattern(string(p)); err != nil {
		return err
	}
	s.settings.Pattern = p
	return s.generate()
}

// SetSpeed is allowed while running and takes effect on the next pause.
func (s *Session) SetSpeed(speed int) {
	s.settings.Speed = ClampSpeed(speed)
}

func checkSize(n int) error {
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("%w: %d (want %d..%d)", sorting.ErrInvalidSize, n, MinSize, MaxSize)
	}
	return nil
}

// Steps starts a run of the configured algorithm on the session array and
// returns its steps. The sequence is single-use; the consumer sets the pace
// by how fast it pulls. Breaking out early stops the sort where it is.
//
// The session is busy from the moment Steps returns, before the first pull,
// so a host can lock its controls at once. A sequence that is never ranged
// over keeps the session busy until Reset.
func (s *Session) Steps(ctx context.Context) (iter.Seq[sorting.Step], error) {
	sorter, epoch, err := s.begin()
	if err != nil {
		return nil, err
	}

	used := false
	return func(yield func(sorting.Step) bool) {
		if used || s.epoch != epoch {
			return
		}
		used = true
		_ = s.drive(ctx, sorter, epoch, func(st sorting.Step) error {
			if !yield(st) {
				return errStopped
			}
			return nil
		})
	}, nil
}

// Run is the push form of Steps: emit is called for every step and a
// non-nil error from it stops the run and is returned.
func (s *Session) Run(ctx context.Context, emit sorting.Emitter) (sorting.Stats, error) {
	sorter, epoch, err := s.begin()
	if err != nil {
		return sorting.Stats{}, err
	}
	if emit == nil {
		emit = func(sorting.Step) error { return nil }
	}
	err = s.drive(ctx, sorter, epoch, emit)
	return s.stats, err
}

func (s *Session) begin() (sorting.Sorter, uint64, error) {
	if s.running {
		return nil, 0, sorting.ErrBusy
	}
	sorter, err := s.registry.Get(s.settings.Algorithm)
	if err != nil {
		return nil, 0, err
	}

	// a finished array is all Sorted; start from neutral colours
	s.arr.MarkAll(sorting.Normal)
	s.stats.Reset()
	s.stats.Start = s.now()
	s.running = true
	s.lastErr = nil

	s.logger.Info("sort started",
		"algorithm", s.settings.Algorithm,
		"size", len(s.arr),
		"speed", s.settings.Speed,
	)
	return sorter, s.epoch, nil
}

func (s *Session) drive(ctx context.Context, sorter sorting.Sorter, epoch uint64, emit sorting.Emitter) (err error) {
	inHost := false
	tr := sorting.NewTracer(s.arr, func(st sorting.Step) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.epoch != epoch {
			return sorting.ErrAborted
		}
		s.stats.Counts = st.Counts
		inHost = true
		err := emit(st)
		inHost = false
		return err
	})

	defer func() {
		if r := recover(); r != nil {
			if inHost {
				s.finish(epoch, errStopped)
				panic(r)
			}
			err = &sorting.RunError{
				Algorithm: sorter.Algorithm(),
				Step:      tr.Steps(),
				Wrapped:   fmt.Errorf("panic: %v", r),
			}
		}
		s.finish(epoch, err)
	}()

	return sorter.Animate(tr)
}

func (s *Session) finish(epoch uint64, err error) {
	if s.epoch != epoch {
		return
	}
	s.running = false
	s.stats.End = s.now()
	elapsed := s.stats.Elapsed(s.stats.End)

	switch {
	case err == nil:
		s.logger.Info("sort finished",
			"algorithm", s.settings.Algorithm,
			"comparisons", s.stats.Comparisons,
			"swaps", s.stats.Swaps,
			"elapsed", elapsed,
		)
	case errors.Is(err, errStopped), errors.Is(err, sorting.ErrAborted),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logger.Debug("sort stopped", "algorithm", s.settings.Algorithm, "reason", err)
	default:
		s.lastErr = err
		s.logger.Error("sort failed", "algorithm", s.settings.Algorithm, "err", err)
	}
}

// Compare benchmarks the selected algorithms on a private random array of
// CompareSize values. The session array is not touched.
func (s *Session) Compare(selected []sorting.Algorithm) (results []compare.Result, err error) {
	sorters, err := s.registry.Sorters(selected)
	if err != nil {
		return nil, err
	}
	if len(sorters) < 2 {
		return nil, sorting.ErrTooFewAlgorithms
	}

	values, err := GenerateValues(s.rng, s.settings.CompareSize, Random)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compare: panic: %v", r)
			s.lastErr = err
			s.logger.Error("comparison failed", "err", err)
			results = nil
		}
	}()

	results, err = compare.NewRunner(s.settings.Scoring).Run(sorters, values)
	if err != nil {
		return nil, err
	}
	s.logger.Info("comparison finished", "algorithms", len(results), "size", len(values), "fastest", results[0].Name)
	return results, nil
}

// SetCompareSize changes the length of comparison arrays.
func (s *Session) SetCompareSize(n int) error {
	if n < MinCompareSize || n > MaxCompareSize {
		return fmt.Errorf("%w: %d (want %d..%d)", sorting.ErrInvalidSize, n, MinCompareSize, MaxCompareSize)
	}
	s.settings.CompareSize = n
	return nil
}
