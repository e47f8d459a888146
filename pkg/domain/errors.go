package domain

import (
	"errors"
	"fmt"
)

// ErrNotStarted is returned when a runner is stepped before it was started.
var ErrNotStarted = errors.New("machine not started")

// ErrShapeMismatch is returned when a Value of the wrong kind reaches an operation.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrInvalidLength is returned when a run is requested with a negative number of steps.
var ErrInvalidLength = errors.New("invalid run length")

// ShapeMismatchError reports which operation received which kind of value.
type ShapeMismatchError struct {
	Op   string // Operation that rejected the value
	Want Kind   // Kind the operation expected
	Got  Kind   // Kind it actually received
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: want %s, got %s", e.Op, ErrShapeMismatch, e.Want, e.Got)
}

// Is lets errors.Is match any ShapeMismatchError against ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func mismatch(op string, want Kind, got Value) error {
	return &ShapeMismatchError{Op: op, Want: want, Got: got.Kind()}
}
