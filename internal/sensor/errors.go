package sensor

import (
	"errors"
	"fmt"

	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrArityMismatch      = errors.New("arity mismatch")
)

// ArityMismatchError is returned when a package carries the wrong number of values
// for its workout type.
type ArityMismatchError struct {
	Kind training.Kind
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrArityMismatch, e.Kind, e.Want, e.Got)
}

func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}
