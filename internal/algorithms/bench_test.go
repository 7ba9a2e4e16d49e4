package algorithms_test

import (
	"math/rand"
	"testing"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/sorting"
)

func benchInput(n int) []int {
	rng := rand.New(rand.NewSource(1))
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Intn(300) + 10
	}
	return vals
}

func BenchmarkCount(b *testing.B) {
	input := benchInput(100)
	for _, s := range algorithms.All() {
		b.Run(s.Algorithm().String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s.Count(input)
			}
		})
	}
}

func BenchmarkAnimate(b *testing.B) {
	input := benchInput(100)
	for _, s := range algorithms.All() {
		b.Run(s.Algorithm().String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tr := sorting.NewTracer(sorting.NewArray(input), nil)
				if err := s.Animate(tr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
