package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration is returned when a package reports a non-positive session duration.
var ErrInvalidDuration = errors.New("workout duration must be positive")

// UnknownWorkoutTypeError indicates a package code outside the recognised set.
type UnknownWorkoutTypeError struct {
	Code string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("workout type not found: %q", e.Code)
}

// ArityError indicates that a package does not carry the values its workout type expects.
type ArityError struct {
	Code   string
	Want   int
	Got    int
	Reason string // set when the count matches but a value has the wrong type
}

func (e *ArityError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("workout %s: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("workout %s expects %d values, got %d", e.Code, e.Want, e.Got)
}

// NotImplementedError is returned when a metric has no formula for the given type.
type NotImplementedError struct {
	Type string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("spent calories not implemented for %s", e.Type)
}
