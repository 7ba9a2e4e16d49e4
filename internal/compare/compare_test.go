package compare

import (
	"errors"
	"testing"
	"time"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/sorting"
)

func TestEfficiency(t *testing.T) {
	s := DefaultScoring()
	tests := []struct {
		name    string
		elapsed time.Duration
		counts  sorting.Counts
		want    int
	}{
		{"time only", 100 * time.Millisecond, sorting.Counts{}, 100},
		{"counts only", 0, sorting.Counts{Comparisons: 100, Swaps: 50}, 500},
		{"mixed", 10 * time.Millisecond, sorting.Counts{Comparisons: 100, Swaps: 50}, 333},
		{"zero denominator", 0, sorting.Counts{}, 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Efficiency(tt.elapsed, tt.counts); got != tt.want {
				t.Errorf("Efficiency = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBadgeFor(t *testing.T) {
	s := DefaultScoring()
	tests := []struct {
		rank, total int
		want        Badge
	}{
		{1, 3, Excellent},
		{2, 3, Good},
		{3, 3, Poor},
		{1, 6, Excellent},
		{2, 6, Excellent},
		{3, 6, Good},
		{4, 6, Average},
		{5, 6, Poor},
		{6, 6, Poor},
		{1, 1, Excellent},
		{0, 3, Poor},
		{1, 0, Poor},
	}
	for _, tt := range tests {
		if got := s.BadgeFor(tt.rank, tt.total); got != tt.want {
			t.Errorf("BadgeFor(%d, %d) = %v, want %v", tt.rank, tt.total, got, tt.want)
		}
	}
}

func TestRankOrdersByTime(t *testing.T) {
	results := []Result{
		{Name: "a", Time: 10 * time.Millisecond},
		{Name: "b", Time: 5 * time.Millisecond},
		{Name: "c", Time: 20 * time.Millisecond},
	}
	ranked := DefaultScoring().Rank(results)

	wantNames := []string{"b", "a", "c"}
	wantBadges := []Badge{Excellent, Good, Poor}
	for i, r := range ranked {
		if r.Name != wantNames[i] {
			t.Errorf("position %d = %s, want %s", i, r.Name, wantNames[i])
		}
		if r.Rank != i+1 {
			t.Errorf("%s rank = %d, want %d", r.Name, r.Rank, i+1)
		}
		if r.Badge != wantBadges[i] {
			t.Errorf("%s badge = %v, want %v", r.Name, r.Badge, wantBadges[i])
		}
	}
	if ranked[0].Millis != 5 {
		t.Errorf("Millis = %v, want 5", ranked[0].Millis)
	}
}

func TestRankKeepsSelectionOrderForTies(t *testing.T) {
	results := []Result{
		{Name: "first", Time: time.Millisecond},
		{Name: "second", Time: time.Millisecond},
		{Name: "third", Time: time.Millisecond},
	}
	ranked := DefaultScoring().Rank(results)
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Name != want {
			t.Errorf("position %d = %s, want %s", i, ranked[i].Name, want)
		}
	}
}

// stepClock advances by one millisecond per call.
func stepClock() func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
}

func TestRunnerRun(t *testing.T) {
	r := NewRunner(DefaultScoring())
	r.Now = stepClock()

	values := []int{5, 3, 8, 1}
	results, err := r.Run(algorithms.All(), values)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}

	// equal clock deltas keep declaration order
	for i, a := range sorting.Algorithms() {
		if results[i].Algorithm != a {
			t.Errorf("position %d = %v, want %v", i, results[i].Algorithm, a)
		}
		if results[i].Time != time.Millisecond {
			t.Errorf("%v time = %v", a, results[i].Time)
		}
	}

	want := map[sorting.Algorithm]sorting.Counts{
		sorting.Bubble:    {Comparisons: 6, Swaps: 4},
		sorting.Quick:     {Comparisons: 5, Swaps: 2},
		sorting.Merge:     {Comparisons: 5, Swaps: 8},
		sorting.Insertion: {Comparisons: 5, Swaps: 4},
		sorting.Selection: {Comparisons: 6, Swaps: 2},
		sorting.Heap:      {Comparisons: 6, Swaps: 6},
	}
	for _, res := range results {
		if res.Counts != want[res.Algorithm] {
			t.Errorf("%v counts = %+v, want %+v", res.Algorithm, res.Counts, want[res.Algorithm])
		}
		if res.Name != res.Algorithm.Info().Name {
			t.Errorf("name = %q", res.Name)
		}
	}

	if values[0] != 5 || values[3] != 1 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestRunnerTooFew(t *testing.T) {
	tests := []struct {
		name    string
		sorters []sorting.Sorter
	}{
		{"none", nil},
		{"one", []sorting.Sorter{algorithms.NewQuick()}},
		{"duplicate", []sorting.Sorter{algorithms.NewQuick(), algorithms.NewQuick()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Benchmark(tt.sorters, []int{3, 1, 2}, DefaultScoring())
			if !errors.Is(err, sorting.ErrTooFewAlgorithms) {
				t.Errorf("err = %v, want ErrTooFewAlgorithms", err)
			}
		})
	}
}

func TestBadgeText(t *testing.T) {
	b, err := Good.MarshalText()
	if err != nil || string(b) != "Good" {
		t.Errorf("MarshalText = %q, %v", b, err)
	}
}
