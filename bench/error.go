package bench

import (
	"errors"
	"fmt"
)

// Common benchmark errors
var (
	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid benchmark configuration")

	// ErrMismatch indicates the scalar and vector matchers disagreed
	ErrMismatch = errors.New("scalar and vector results differ")

	// ErrMalformedReport indicates a report could not be parsed
	ErrMalformedReport = errors.New("malformed benchmark report")
)

// MismatchError describes the first row where the vector result differed
// from the scalar result. It always indicates a defect in a matcher.
type MismatchError struct {
	Iteration int
	Index     int
	Color     byte
	Input     byte
	Scalar    byte
	Vector    byte
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v at index %d (iteration %d, color %d, input %#08b): scalar %#08b, vector %#08b",
		ErrMismatch, e.Index, e.Iteration, e.Color, e.Input, e.Scalar, e.Vector)
}

// Unwrap returns ErrMismatch
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}
