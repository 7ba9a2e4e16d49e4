package sorting

import (
	"errors"
	"fmt"
)

// Domain errors for sorting sessions.
var (
	// ErrUnknownAlgorithm indicates a tag that names none of the six sorts.
	ErrUnknownAlgorithm = errors.New("sortlab: unknown algorithm")

	// ErrUnknownPattern indicates an unsupported array pattern.
	ErrUnknownPattern = errors.New("sortlab: unknown array pattern")

	// ErrTooFewAlgorithms is returned when a comparison has fewer than two entries.
	ErrTooFewAlgorithms = errors.New("sortlab: select at least 2 algorithms to compare")

	// ErrBusy indicates an operation that is refused while a sort is animating.
	ErrBusy = errors.New("sortlab: a sort is already running")

	// ErrAborted indicates the run was discarded before it finished.
	ErrAborted = errors.New("sortlab: run aborted")

	// ErrInvalidSize indicates an array size outside the allowed bounds.
	ErrInvalidSize = errors.New("sortlab: array size out of bounds")
)

// RunError wraps an unexpected failure with run context.
type RunError struct {
	Algorithm Algorithm
	Step      int
	Wrapped   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s sort failed at step %d: %v", e.Algorithm, e.Step, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
