package sorting

// StepKind identifies what happened in a step.
type StepKind uint8

const (
	StepCompare StepKind = iota
	StepSwap
	StepWrite
	StepDone
)

func (k StepKind) String() string {
	switch k {
	case StepCompare:
		return "compare"
	case StepSwap:
		return "swap"
	case StepWrite:
		return "write"
	case StepDone:
		return "done"
	}
	return "unknown"
}

// Step is emitted after every state-changing action of an animated sort.
// Elements is a snapshot and stays valid after the run continues.
type Step struct {
	Seq      int
	Kind     StepKind
	Indices  []int
	Elements Array
	Counts   Counts
}

// Emitter receives steps. A non-nil error aborts the run and is returned
// by the sorter unchanged.
type Emitter func(Step) error

// Tracer is the instrumented handle an animated sorter works through. It
// owns the counters for one run and mutates the wrapped Array in place.
type Tracer struct {
	arr    Array
	counts Counts
	emit   Emitter
	seq    int
}

// NewTracer wraps arr. A nil emit discards steps.
func NewTracer(arr Array, emit Emitter) *Tracer {
	if emit == nil {
		emit = func(Step) error { return nil }
	}
	return &Tracer{arr: arr, emit: emit}
}

func (t *Tracer) Len() int         { return len(t.arr) }
func (t *Tracer) Value(i int) int  { return t.arr[i].Value }
func (t *Tracer) At(i int) Element { return t.arr[i] }
func (t *Tracer) Counts() Counts   { return t.counts }
func (t *Tracer) Steps() int       { return t.seq }

// Mark sets the state of the given positions without emitting.
func (t *Tracer) Mark(s State, idx ...int) {
	for _, i := range idx {
		t.arr[i].State = s
	}
}

// Compare marks i and j as comparing, counts one comparison and emits.
// The caller evaluates the comparison after Compare returns.
func (t *Tracer) Compare(i, j int) error {
	t.Mark(Comparing, i, j)
	t.counts.Comparisons++
	return t.step(StepCompare, i, j)
}

// Swap exchanges positions i and j, counts one swap and emits.
func (t *Tracer) Swap(i, j int) error {
	t.Mark(Swapping, i, j)
	t.arr[i], t.arr[j] = t.arr[j], t.arr[i]
	t.counts.Swaps++
	return t.step(StepSwap, i, j)
}

// Put overwrites position k with e (a shift or merge write-back), counts
// one swap and emits.
func (t *Tracer) Put(k int, e Element) error {
	e.State = Swapping
	t.arr[k] = e
	t.counts.Swaps++
	return t.step(StepWrite, k)
}

// Place drops e into position k as Normal without counting or emitting.
// Insertion sort uses it to release the held key.
func (t *Tracer) Place(k int, e Element) {
	e.State = Normal
	t.arr[k] = e
}

// Finish marks every element sorted and emits the terminal step.
func (t *Tracer) Finish() error {
	t.arr.MarkAll(Sorted)
	return t.step(StepDone)
}

func (t *Tracer) step(kind StepKind, idx ...int) error {
	t.seq++
	return t.emit(Step{
		Seq:      t.seq,
		Kind:     kind,
		Indices:  idx,
		Elements: t.arr.Clone(),
		Counts:   t.counts,
	})
}
