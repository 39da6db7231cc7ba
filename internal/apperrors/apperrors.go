// Package apperrors defines the error taxonomy shared by services and the HTTP boundary.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error carries a client-facing message on top of one of the sentinel kinds.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Err: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation reports malformed input or a violated cross-field constraint.
func Validation(format string, args ...any) *Error {
	return newError(ErrValidation, format, args...)
}

// Unauthorized reports a credential or token that could not be verified.
func Unauthorized(format string, args ...any) *Error {
	return newError(ErrUnauthorized, format, args...)
}

// Forbidden reports a failed authorization guard.
func Forbidden(format string, args ...any) *Error {
	return newError(ErrForbidden, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return newError(ErrNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(ErrConflict, format, args...)
}
