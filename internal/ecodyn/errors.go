package ecodyn

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a rate or timing value that is
	// non-positive or otherwise outside its documented domain.
	ErrInvalidParameter = errors.New("ecodyn: invalid parameter")

	// ErrParameterBounds indicates a parameter value outside its
	// declared uncertainty range.
	ErrParameterBounds = errors.New("ecodyn: parameter out of valid bounds")

	// ErrStepMismatch indicates a step size that does not evenly
	// subdivide the duration.
	ErrStepMismatch = errors.New("ecodyn: step size does not evenly divide duration")

	// ErrNumericOverflow indicates the state became NaN or Inf.
	ErrNumericOverflow = errors.New("ecodyn: numeric overflow (state is NaN or Inf)")

	// ErrUnknownOutput indicates a requested output variable that a
	// backend does not expose.
	ErrUnknownOutput = errors.New("ecodyn: unknown output variable")
)

// RunError wraps an error with the step and time it occurred at.
type RunError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
