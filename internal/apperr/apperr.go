// Package apperr defines the error type shared by all rep packages
package apperr

import (
	"fmt"
)

// Error is an application error with a user-facing message and an
// optional underlying cause.
type Error struct {
	Err      error
	Message  string
	template *Error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a formatted copy against the error it was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.template == t
}

// Fmt returns a copy of the error with its message formatted using the
// provided arguments. The copy still matches the original with
// errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Err:      e.Err,
		template: e,
	}
}

// Wrap returns a copy of the error with an underlying cause attached.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
	}
}
