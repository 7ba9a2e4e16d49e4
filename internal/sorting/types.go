package sorting

import "time"

// State is the visual tag of an element. It has no effect on ordering.
type State uint8

const (
	Normal State = iota
	Comparing
	Swapping
	Sorted
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Comparing:
		return "comparing"
	case Swapping:
		return "swapping"
	case Sorted:
		return "sorted"
	}
	return "unknown"
}

type Element struct {
	Value int
	State State
}

type Array []Element

// NewArray wraps values as Normal elements.
func NewArray(values []int) Array {
	a := make(Array, len(values))
	for i, v := range values {
		a[i] = Element{Value: v}
	}
	return a
}

func (a Array) Values() []int {
	vals := make([]int, len(a))
	for i, e := range a {
		vals[i] = e.Value
	}
	return vals
}

func (a Array) Clone() Array {
	c := make(Array, len(a))
	copy(c, a)
	return c
}

func (a Array) MarkAll(s State) {
	for i := range a {
		a[i].State = s
	}
}

// IsSorted reports whether values are non-decreasing.
func (a Array) IsSorted() bool {
	for i := 1; i < len(a); i++ {
		if a[i-1].Value > a[i].Value {
			return false
		}
	}
	return true
}

// CountState returns how many elements carry state s.
func (a Array) CountState(s State) int {
	n := 0
	for _, e := range a {
		if e.State == s {
			n++
		}
	}
	return n
}

type Counts struct {
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Swaps       int `json:"swaps" yaml:"swaps"`
}

type Stats struct {
	Counts
	Start time.Time
	End   time.Time
}

func (s *Stats) Reset() {
	*s = Stats{}
}

// Elapsed is End-Start for a finished run, now-Start for an active one and
// zero before the run starts.
func (s Stats) Elapsed(now time.Time) time.Duration {
	switch {
	case s.Start.IsZero():
		return 0
	case s.End.IsZero():
		return now.Sub(s.Start)
	default:
		return s.End.Sub(s.Start)
	}
}
