package taskstore

import "errors"

var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrUnknownPriority = errors.New("unknown priority")
)

// ValidationError is returned by Add when a task cannot be created.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }
