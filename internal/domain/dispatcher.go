package domain

import (
	"fmt"
	"math"
	"sort"
)

// Workout type codes reported by the sensors.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

type constructor struct {
	arity int
	build func(data []float64) (Workout, error)
}

var constructors = map[string]constructor{
	CodeSwimming: {arity: 5, build: newSwimming},
	CodeRunning:  {arity: 3, build: newRunning},
	CodeWalking:  {arity: 4, build: newSportsWalking},
}

// ReadPackage builds the workout described by a sensor package. Values are
// bound positionally: action, duration, weight, then the variant fields.
func ReadPackage(code string, data []float64) (Workout, error) {
	c, ok := constructors[code]
	if !ok {
		return nil, &UnknownWorkoutTypeError{Code: code}
	}
	if len(data) != c.arity {
		return nil, &ArityError{Code: code, Want: c.arity, Got: len(data)}
	}
	if err := requireWhole(code, data, 0, "action"); err != nil {
		return nil, err
	}
	if !(data[1] > 0) || math.IsInf(data[1], 0) {
		return nil, fmt.Errorf("workout %s: %w (got %v)", code, ErrInvalidDuration, data[1])
	}
	return c.build(data)
}

// Codes lists the recognised workout codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(constructors))
	for code := range constructors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Arity reports the number of values a package with the given code must carry.
func Arity(code string) (int, bool) {
	c, ok := constructors[code]
	return c.arity, ok
}

// requireWhole rejects values bound to integer fields that are fractional
// or do not fit in an int.
func requireWhole(code string, data []float64, index int, field string) error {
	v := data[index]
	var reason string
	switch {
	case math.IsInf(v, 0) || v != math.Trunc(v):
		reason = fmt.Sprintf("%s must be a whole number, got %v", field, v)
	case v >= float64(math.MaxInt) || v < float64(math.MinInt):
		reason = fmt.Sprintf("%s out of range, got %v", field, v)
	default:
		return nil
	}
	return &ArityError{Code: code, Want: len(data), Got: len(data), Reason: reason}
}

func newTraining(data []float64) Training {
	return Training{Action: int(data[0]), Duration: data[1], Weight: data[2]}
}

func newRunning(data []float64) (Workout, error) {
	return Running{Training: newTraining(data)}, nil
}

func newSportsWalking(data []float64) (Workout, error) {
	return SportsWalking{Training: newTraining(data), Height: data[3]}, nil
}

func newSwimming(data []float64) (Workout, error) {
	if err := requireWhole(CodeSwimming, data, 4, "pool lap count"); err != nil {
		return nil, err
	}
	return Swimming{Training: newTraining(data), LengthPool: data[3], CountPool: int(data[4])}, nil
}
