package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf values.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrInvalidConfig indicates a non-positive step or duration.
	ErrInvalidConfig = errors.New("dynamo: invalid simulation config")

	// ErrDimensionMismatch indicates mismatched state/control dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrController indicates the controller rejected its input.
	ErrController = errors.New("dynamo: controller fault")
)

// SimError wraps an error with the step at which it happened.
type SimError struct {
	Time    float64
	Step    int
	Wrapped error
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e SimError) Unwrap() error {
	return e.Wrapped
}
