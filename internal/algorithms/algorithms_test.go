package algorithms_test

import (
	"errors"
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/sorting"
)

// animate runs s over values and returns the final array, the collected
// steps and the sorter's error.
func animate(s sorting.Sorter, values []int) (sorting.Array, []sorting.Step, error) {
	arr := sorting.NewArray(values)
	var steps []sorting.Step
	tr := sorting.NewTracer(arr, func(st sorting.Step) error {
		steps = append(steps, st)
		return nil
	})
	err := s.Animate(tr)
	return arr, steps, err
}

func randomValues(rng *rand.Rand, n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Intn(300) + 10
	}
	return vals
}

var _ = Describe("Sorters", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	for _, s := range algorithms.All() {
		s := s

		Describe(s.Algorithm().Info().Name, func() {
			It("reports its own algorithm", func() {
				got, err := algorithms.New(s.Algorithm())
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Algorithm()).To(Equal(s.Algorithm()))
			})

			It("produces a non-decreasing permutation for lengths 0..40", func() {
				for n := 0; n <= 40; n++ {
					input := randomValues(rng, n)
					arr, _, err := animate(s, input)
					Expect(err).NotTo(HaveOccurred())

					want := slices.Clone(input)
					slices.Sort(want)
					Expect(arr.Values()).To(Equal(want), "n=%d input=%v", n, input)
				}
			})

			It("handles duplicates and already ordered input", func() {
				inputs := [][]int{
					{7, 7, 7, 7},
					{1, 2, 3, 4, 5, 6},
					{6, 5, 4, 3, 2, 1},
					{3, 1, 3, 1, 2, 2},
				}
				for _, in := range inputs {
					arr, _, err := animate(s, in)
					Expect(err).NotTo(HaveOccurred())
					Expect(arr.IsSorted()).To(BeTrue(), "input %v", in)
				}
			})

			It("counts exactly like its benchmark twin", func() {
				for n := 0; n <= 40; n += 3 {
					input := randomValues(rng, n)
					_, steps, err := animate(s, input)
					Expect(err).NotTo(HaveOccurred())
					Expect(steps).NotTo(BeEmpty())

					final := steps[len(steps)-1]
					Expect(final.Counts).To(Equal(s.Count(input)), "n=%d input=%v", n, input)
				}
			})

			It("leaves the twin's input untouched", func() {
				input := []int{9, 4, 7, 1}
				s.Count(input)
				Expect(input).To(Equal([]int{9, 4, 7, 1}))
			})

			It("ends with every element sorted and a single done step", func() {
				arr, steps, err := animate(s, []int{4, 2, 9, 1, 5})
				Expect(err).NotTo(HaveOccurred())
				Expect(arr.CountState(sorting.Sorted)).To(Equal(len(arr)))

				done := 0
				for _, st := range steps {
					if st.Kind == sorting.StepDone {
						done++
					}
				}
				Expect(done).To(Equal(1))
				Expect(steps[len(steps)-1].Kind).To(Equal(sorting.StepDone))
			})

			It("emits a compare step for every counted comparison", func() {
				_, steps, err := animate(s, []int{8, 3, 5, 1, 9, 2})
				Expect(err).NotTo(HaveOccurred())

				compares, moves := 0, 0
				for _, st := range steps {
					switch st.Kind {
					case sorting.StepCompare:
						compares++
					case sorting.StepSwap, sorting.StepWrite:
						moves++
					}
				}
				final := steps[len(steps)-1].Counts
				Expect(compares).To(Equal(final.Comparisons))
				Expect(moves).To(Equal(final.Swaps))
			})

			It("does nothing on empty and single-element arrays", func() {
				for _, in := range [][]int{{}, {42}} {
					arr, steps, err := animate(s, in)
					Expect(err).NotTo(HaveOccurred())
					Expect(arr.Values()).To(Equal(in))
					Expect(steps).To(HaveLen(1))
					Expect(steps[0].Kind).To(Equal(sorting.StepDone))
					Expect(steps[0].Counts).To(Equal(sorting.Counts{}))
					Expect(s.Count(in)).To(Equal(sorting.Counts{}))
				}
			})

			It("stops at the first emitter error", func() {
				stop := errors.New("stop")
				calls := 0
				tr := sorting.NewTracer(sorting.NewArray([]int{5, 4, 3, 2, 1}), func(sorting.Step) error {
					calls++
					if calls == 3 {
						return stop
					}
					return nil
				})
				Expect(s.Animate(tr)).To(MatchError(stop))
				Expect(calls).To(Equal(3))
			})
		})
	}

	DescribeTable("fixed trace for [5 3 8 1]",
		func(a sorting.Algorithm, comparisons, swaps int) {
			s, err := algorithms.New(a)
			Expect(err).NotTo(HaveOccurred())

			want := sorting.Counts{Comparisons: comparisons, Swaps: swaps}
			Expect(s.Count([]int{5, 3, 8, 1})).To(Equal(want))

			arr, steps, err := animate(s, []int{5, 3, 8, 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(arr.Values()).To(Equal([]int{1, 3, 5, 8}))
			Expect(steps[len(steps)-1].Counts).To(Equal(want))
		},
		Entry("bubble", sorting.Bubble, 6, 4),
		Entry("quick", sorting.Quick, 5, 2),
		Entry("merge", sorting.Merge, 5, 8),
		Entry("insertion", sorting.Insertion, 5, 4),
		Entry("selection", sorting.Selection, 6, 2),
		Entry("heap", sorting.Heap, 6, 6),
	)

	Describe("quick sort trace", func() {
		It("partitions around the last element", func() {
			_, steps, err := animate(algorithms.NewQuick(), []int{5, 3, 8, 1})
			Expect(err).NotTo(HaveOccurred())

			var kinds []sorting.StepKind
			for _, st := range steps {
				kinds = append(kinds, st.Kind)
			}
			Expect(kinds).To(Equal([]sorting.StepKind{
				sorting.StepCompare, sorting.StepCompare, sorting.StepCompare,
				sorting.StepSwap,
				sorting.StepCompare, sorting.StepCompare,
				sorting.StepSwap,
				sorting.StepDone,
			}))
			Expect(steps[0].Indices).To(Equal([]int{0, 3}))
			Expect(steps[3].Elements.Values()).To(Equal([]int{1, 3, 8, 5}))
		})
	})

	Describe("bubble sort", func() {
		It("exits after one pass on sorted input", func() {
			for n := 2; n <= 20; n++ {
				input := make([]int, n)
				for i := range input {
					input[i] = i * 3
				}
				want := sorting.Counts{Comparisons: n - 1, Swaps: 0}
				Expect(algorithms.NewBubble().Count(input)).To(Equal(want))

				_, steps, err := animate(algorithms.NewBubble(), input)
				Expect(err).NotTo(HaveOccurred())
				Expect(steps).To(HaveLen(n))
				Expect(steps[len(steps)-1].Counts).To(Equal(want))
			}
		})

		It("swaps exactly once per inversion", func() {
			input := []int{6, 5, 4, 3, 2, 1}
			Expect(algorithms.NewBubble().Count(input).Swaps).To(Equal(15))
		})
	})

	Describe("closed forms", func() {
		It("selection sort always makes n(n-1)/2 comparisons", func() {
			for n := 0; n <= 25; n++ {
				c := algorithms.NewSelection().Count(randomValues(rng, n))
				Expect(c.Comparisons).To(Equal(n * (n - 1) / 2))
				Expect(c.Swaps).To(BeNumerically("<=", max(n-1, 0)))
			}
		})

		It("merge sort writes n*ceil(log2 n) elements for powers of two", func() {
			for _, n := range []int{2, 4, 8, 16, 32} {
				c := algorithms.NewMerge().Count(randomValues(rng, n))
				log := 0
				for p := 1; p < n; p *= 2 {
					log++
				}
				Expect(c.Swaps).To(Equal(n * log))
			}
		})

		It("heap sort swaps the root n-1 times at minimum", func() {
			c := algorithms.NewHeap().Count([]int{1, 1, 1, 1, 1})
			Expect(c.Swaps).To(Equal(4))
		})

		It("insertion sort shifts once per inversion", func() {
			Expect(algorithms.NewInsertion().Count([]int{4, 3, 2, 1}).Swaps).To(Equal(6))
		})
	})

	It("rejects an unknown algorithm", func() {
		_, err := algorithms.New(sorting.Algorithm(99))
		Expect(errors.Is(err, sorting.ErrUnknownAlgorithm)).To(BeTrue())
	})
})
