package domain

import "errors"

var (
	// ErrInvalidInput is returned when a run cannot be constructed from its input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExecution is returned when a step source fails while producing snapshots.
	ErrExecution = errors.New("execution failed")
	// ErrInvalidState is returned when an operation is not allowed in the current state.
	ErrInvalidState = errors.New("invalid state")
)
