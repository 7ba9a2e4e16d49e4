package sorting

import (
	"fmt"
	"strings"
)

// Algorithm enumerates the supported sorts.
type Algorithm uint8

const (
	Bubble Algorithm = iota
	Quick
	Merge
	Insertion
	Selection
	Heap
)

var algorithmTags = [...]string{
	Bubble:    "bubble",
	Quick:     "quick",
	Merge:     "merge",
	Insertion: "insertion",
	Selection: "selection",
	Heap:      "heap",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmTags) {
		return algorithmTags[a]
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

func (a Algorithm) Valid() bool {
	return int(a) < len(algorithmTags)
}

// Algorithms returns all sorts in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Quick, Merge, Insertion, Selection, Heap}
}

// ParseAlgorithm accepts the short tag ("quick") or the display name
// ("Quick Sort"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, " sort")
	key = strings.TrimSuffix(key, "sort")
	for i, tag := range algorithmTags {
		if tag == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Info describes an algorithm for display.
type Info struct {
	Name            string
	Description     string
	TimeComplexity  string
	SpaceComplexity string
}

var algorithmInfo = map[Algorithm]Info{
	Bubble: {
		Name:            "Bubble Sort",
		Description:     "Repeatedly compares adjacent elements and swaps them if they are in the wrong order.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
	},
	Quick: {
		Name:            "Quick Sort",
		Description:     "Picks the last element as pivot, partitions around it, then sorts both sides recursively.",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(log n)",
	},
	Merge: {
		Name:            "Merge Sort",
		Description:     "Divides the array into halves, sorts them, and merges them back together.",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(n)",
	},
	Insertion: {
		Name:            "Insertion Sort",
		Description:     "Builds the sorted prefix one item at a time by shifting larger items right.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
	},
	Selection: {
		Name:            "Selection Sort",
		Description:     "Finds the minimum of the unsorted part and places it at the front.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
	},
	Heap: {
		Name:            "Heap Sort",
		Description:     "Builds a max-heap, then repeatedly moves the maximum to the end.",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(1)",
	},
}

func (a Algorithm) Info() Info {
	if info, ok := algorithmInfo[a]; ok {
		return info
	}
	return Info{Name: a.String()}
}

// Sorter is a steppable sort: an instrumented variant that reports every
// step through a Tracer, and a pure twin that only counts.
//
// For any input both variants must report identical Counts.
type Sorter interface {
	Algorithm() Algorithm
	Animate(t *Tracer) error
	Count(values []int) Counts
}
