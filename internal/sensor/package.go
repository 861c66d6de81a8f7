// Package sensor turns raw sensor packages into trainings.
package sensor

import (
	"fmt"
	"math"

	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

// Package is a raw sensor package: workout code and positional values.
type Package struct {
	Code string
	Data []float64
}

type constructor struct {
	arity int
	build func(data []float64) (training.Training, error)
}

var constructors = map[training.Kind]constructor{
	training.KindSwimming: {arity: 5, build: buildSwimming},
	training.KindRunning:  {arity: 3, build: buildRunning},
	training.KindWalking:  {arity: 4, build: buildWalking},
}

// Arity returns how many values the package of given kind must carry.
func Arity(kind training.Kind) (int, bool) {
	c, ok := constructors[kind]
	return c.arity, ok
}

// ReadPackage reads data received from sensors and builds the matching training.
// Values are applied positionally in the order the training constructor takes them.
func ReadPackage(code string, data []float64) (training.Training, error) {
	kind := training.Kind(code)
	c, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	if len(data) != c.arity {
		return nil, &ArityMismatchError{Kind: kind, Want: c.arity, Got: len(data)}
	}

	t, err := c.build(data)
	if err != nil {
		return nil, fmt.Errorf("read %s package: %w", kind, err)
	}
	return t, nil
}

// Read is a shorthand for ReadPackage(p.Code, p.Data).
func (p Package) Read() (training.Training, error) {
	return ReadPackage(p.Code, p.Data)
}

func buildRunning(data []float64) (training.Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	return training.NewRunning(action, data[1], data[2])
}

func buildWalking(data []float64) (training.Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	return training.NewSportsWalking(action, data[1], data[2], data[3])
}

func buildSwimming(data []float64) (training.Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	countPool, err := wholeNumber("count_pool", data[4])
	if err != nil {
		return nil, err
	}
	return training.NewSwimming(action, data[1], data[2], data[3], countPool)
}

// wholeNumber converts a counter value; counters coming from sensors are integers.
func wholeNumber(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, &training.InvalidInputError{Field: field, Value: v, Reason: "must be a whole number"}
	}
	if math.Abs(v) > math.MaxInt32 {
		return 0, &training.InvalidInputError{Field: field, Value: v, Reason: "out of range"}
	}
	return int(v), nil
}
