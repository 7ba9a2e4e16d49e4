// Package compare benchmarks several sorts on the same input and ranks them.
package compare

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/san-kum/sortlab/internal/sorting"
)

// Weights of the efficiency formula
//
//	round(Numerator / (ms*Time + comparisons*Comparison + swaps*Swap))
type Weights struct {
	Numerator  float64 `yaml:"numerator" json:"numerator"`
	Time       float64 `yaml:"time_weight" json:"time_weight"`
	Comparison float64 `yaml:"comparison_weight" json:"comparison_weight"`
	Swap       float64 `yaml:"swap_weight" json:"swap_weight"`
}

// Thresholds are rank percentiles (0..100) at or above which a badge is given.
type Thresholds struct {
	Excellent float64 `yaml:"excellent" json:"excellent"`
	Good      float64 `yaml:"good" json:"good"`
	Average   float64 `yaml:"average" json:"average"`
}

type Scoring struct {
	Weights    Weights    `yaml:",inline" json:"weights"`
	Thresholds Thresholds `yaml:",inline" json:"thresholds"`
}

func DefaultScoring() Scoring {
	return Scoring{
		Weights:    Weights{Numerator: 10000, Time: 1, Comparison: 0.1, Swap: 0.2},
		Thresholds: Thresholds{Excellent: 80, Good: 60, Average: 40},
	}
}

// Badge is the qualitative grade attached to a ranked result.
type Badge uint8

const (
	Poor Badge = iota
	Average
	Good
	Excellent
)

func (b Badge) String() string {
	switch b {
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	case Average:
		return "Average"
	case Poor:
		return "Poor"
	}
	return "unknown"
}

func (b Badge) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Result is one row of a comparison. Rank starts at 1.
type Result struct {
	Algorithm  sorting.Algorithm `json:"-"`
	Name       string            `json:"algorithm"`
	Time       time.Duration     `json:"-"`
	Millis     float64           `json:"time_ms"`
	Counts     sorting.Counts    `json:"counts"`
	Efficiency int               `json:"efficiency"`
	Badge      Badge             `json:"badge"`
	Rank       int               `json:"rank"`
}

// Efficiency scores a run; higher is better. A zero denominator counts as 1.
func (s Scoring) Efficiency(elapsed time.Duration, c sorting.Counts) int {
	w := s.Weights
	den := Millis(elapsed)*w.Time + float64(c.Comparisons)*w.Comparison + float64(c.Swaps)*w.Swap
	if den == 0 {
		den = 1
	}
	return int(math.Round(w.Numerator / den))
}

// BadgeFor grades the 1-based rank out of total. The percentile counts the
// position from zero, so the fastest entry always scores 100.
func (s Scoring) BadgeFor(rank, total int) Badge {
	if total <= 0 || rank < 1 {
		return Poor
	}
	p := float64(total-(rank-1)) / float64(total) * 100
	th := s.Thresholds
	switch {
	case p >= th.Excellent:
		return Excellent
	case p >= th.Good:
		return Good
	case p >= th.Average:
		return Average
	}
	return Poor
}

// Rank orders results by ascending time, keeping input order for ties, and
// fills in Rank, Efficiency and Badge. The slice is sorted in place.
func (s Scoring) Rank(results []Result) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Time < results[j].Time
	})
	for i := range results {
		r := &results[i]
		r.Rank = i + 1
		r.Millis = Millis(r.Time)
		r.Efficiency = s.Efficiency(r.Time, r.Counts)
		r.Badge = s.BadgeFor(r.Rank, len(results))
	}
	return results
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Runner times benchmark twins. Now is the clock; nil means time.Now.
type Runner struct {
	Scoring Scoring
	Now     func() time.Time
}

func NewRunner(scoring Scoring) *Runner {
	return &Runner{Scoring: scoring, Now: time.Now}
}

// Run executes each sorter's Count twin on its own copy of values,
// sequentially, and returns the ranked results. Repeated algorithms are
// dropped; fewer than two distinct ones is an error and nothing runs.
func (r *Runner) Run(sorters []sorting.Sorter, values []int) ([]Result, error) {
	sorters = dedupe(sorters)
	if len(sorters) < 2 {
		return nil, sorting.ErrTooFewAlgorithms
	}

	now := r.Now
	if now == nil {
		now = time.Now
	}

	results := make([]Result, 0, len(sorters))
	for _, s := range sorters {
		if s == nil {
			return nil, fmt.Errorf("compare: nil sorter")
		}
		input := make([]int, len(values))
		copy(input, values)

		start := now()
		counts := s.Count(input)
		elapsed := now().Sub(start)

		results = append(results, Result{
			Algorithm: s.Algorithm(),
			Name:      s.Algorithm().Info().Name,
			Time:      elapsed,
			Counts:    counts,
		})
	}
	return r.Scoring.Rank(results), nil
}

// Benchmark is Run with the wall clock.
func Benchmark(sorters []sorting.Sorter, values []int, scoring Scoring) ([]Result, error) {
	return NewRunner(scoring).Run(sorters, values)
}

func dedupe(sorters []sorting.Sorter) []sorting.Sorter {
	seen := make(map[sorting.Algorithm]bool, len(sorters))
	out := make([]sorting.Sorter, 0, len(sorters))
	for _, s := range sorters {
		if s == nil {
			out = append(out, s)
			continue
		}
		if seen[s.Algorithm()] {
			continue
		}
		seen[s.Algorithm()] = true
		out = append(out, s)
	}
	return out
}
