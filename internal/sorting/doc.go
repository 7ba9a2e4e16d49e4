// Package sorting provides the core primitives shared by every sort in sortlab.
//
// The package defines the array model and the step-event protocol used to
// animate comparison sorts:
//
//   - [Element] and [Array]: values tagged with a visual [State]
//   - [Stats]: comparison/swap counters plus run timestamps
//   - [Algorithm]: closed enumeration of the six supported sorts
//   - [Sorter]: an animated implementation plus its pure counting twin
//   - [Tracer]: the per-run view of an Array handed to animated sorters
//   - [Step]: the event emitted after every comparison, swap or write
//
// # Example
//
//	arr := sorting.NewArray([]int{5, 3, 8, 1})
//	tr := sorting.NewTracer(arr, func(st sorting.Step) error {
//	    render(st.Elements)
//	    return nil
//	})
//	err := sorter.Animate(tr)
//
// # Pacing
//
// Algorithms never sleep. Each state change is reported to the [Emitter],
// and the host decides how long to wait before returning. Returning a
// non-nil error aborts the algorithm.
//
// # Thread Safety
//
// Tracer and Array are NOT thread-safe. A run mutates its Array from a
// single goroutine.
package sorting
