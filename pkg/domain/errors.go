package domain

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound is returned when an action names a class with no registration.
var ErrNodeNotFound = errors.New("node not found")

// UnknownErrorMessage is reported when a failure carries no textual payload.
const UnknownErrorMessage = "unknown error"

// NotFoundError reports a class that has no registration.
type NotFoundError struct {
	Class string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %s not found", e.Class)
}

// Unwrap lets errors.Is match ErrNodeNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNodeNotFound
}

// StepError describes the action that stopped a run.
type StepError struct {
	// Index is the zero-based position of the failing action.
	Index  int
	Action Action
	// Message is the text handed to the onError observer.
	Message string
	// Panic is true when the node panicked instead of returning an error.
	Panic bool
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("action %q (step %d): %s", e.Action.Name, e.Index+1, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
