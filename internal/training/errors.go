package training

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid training input")

// InvalidInputError describes a sensor value that cannot produce a meaningful result.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s = %v %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func validatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

func validateAction(action int) error {
	if action < 0 {
		return &InvalidInputError{Field: "action", Value: float64(action), Reason: "must not be negative"}
	}
	return nil
}
