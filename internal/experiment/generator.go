package experiment

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	MinValue = 10
	MaxValue = 309

	MinSize            = 5
	MaxSize            = 100
	DefaultSize        = 20
	DefaultCompareSize = 30
	MinCompareSize     = 2
	MaxCompareSize     = 1000
)

// Pattern shapes a generated array.
type Pattern string

const (
	Random       Pattern = "random"
	Ascending    Pattern = "sorted"
	Descending   Pattern = "reversed"
	NearlySorted Pattern = "nearly-sorted"
	FewUnique    Pattern = "few-unique"
)

func Patterns() []Pattern {
	return []Pattern{Random, Ascending, Descending, NearlySorted, FewUnique}
}

func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return Random, nil
	}
	if !slices.Contains(Patterns(), p) {
		return "", fmt.Errorf("%w: %q", sorting.ErrUnknownPattern, s)
	}
	return p, nil
}

// Next returns the pattern after p, wrapping around.
func (p Pattern) Next() Pattern {
	all := Patterns()
	i := slices.Index(all, p)
	return all[(i+1)%len(all)]
}

// GenerateValues returns n values in [MinValue, MaxValue] shaped by p.
func GenerateValues(rng *rand.Rand, n int, p Pattern) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", sorting.ErrInvalidSize, n)
	}
	vals := make([]int, n)
	span := MaxValue - MinValue + 1

	switch p {
	case Random, "":
		for i := range vals {
			vals[i] = rng.Intn(span) + MinValue
		}
	case Ascending, Descending, NearlySorted:
		for i := range vals {
			vals[i] = rng.Intn(span) + MinValue
		}
		slices.Sort(vals)
		switch p {
		case Descending:
			slices.Reverse(vals)
		case NearlySorted:
			for k := 0; k < n/10+1 && n > 1; k++ {
				i := rng.Intn(n - 1)
				vals[i], vals[i+1] = vals[i+1], vals[i]
			}
		}
	case FewUnique:
		buckets := [4]int{}
		for i := range buckets {
			buckets[i] = rng.Intn(span) + MinValue
		}
		for i := range vals {
			vals[i] = buckets[rng.Intn(len(buckets))]
		}
	default:
		return nil, fmt.Errorf("%w: %q", sorting.ErrUnknownPattern, string(p))
	}
	return vals, nil
}
