package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidMass indicates a particle constructed with a non-positive or non-finite mass.
	ErrInvalidMass = errors.New("dynamo: mass must be positive and finite")

	// ErrInvalidMassRange indicates a mass range with min > max.
	ErrInvalidMassRange = errors.New("dynamo: invalid mass range")

	// ErrInvalidCount indicates a particle count outside the accepted range.
	ErrInvalidCount = errors.New("dynamo: invalid particle count")

	// ErrInvalidBox indicates a bounding box with a non-positive half-size.
	ErrInvalidBox = errors.New("dynamo: bounding box half-size must be positive")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidState indicates a particle state holding NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")
)

// SimError reports the tick at which a run went wrong.
type SimError struct {
	Tick    int
	Message string
	Wrapped error
}

func (e SimError) Error() string {
	return fmt.Sprintf("tick %d: %s", e.Tick, e.Message)
}

func (e SimError) Unwrap() error {
	return e.Wrapped
}
