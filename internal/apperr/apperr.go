// Package apperr defines the error type used across focusring
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a user-facing message. Package-level
// values act as templates that are specialised with Fmt and Wrap.
type Error struct {
	Cause   error
	base    *Error
	Message string
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same template as e.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.root() == t.root()
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap returns a copy of the error with err recorded as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		base:    e.root(),
	}
}
