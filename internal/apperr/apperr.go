// Package apperr defines the error kinds shared by all services. Handlers map
// a Kind to an HTTP status and a machine-readable code in the response envelope.
package apperr

import (
	"errors"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindUpstreamUnavailable
)

// Code returns the machine code carried in the error envelope.
func (k Kind) Code() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindConflict:
		return "CONFLICT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindUpstreamUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Details holds per-field validation failures, nil otherwise.
	Details map[string]string
	wrapped error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.wrapped }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string, details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func Conflict(message string) *Error     { return New(KindConflict, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

// Internal wraps an unexpected store or signing failure; the wrapped error is
// logged server-side and never leaked to the caller.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, wrapped: err}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsUniqueViolation reports whether err is a unique-constraint violation from
// the underlying store. The database constraint is the authoritative guard for
// slug and email uniqueness; application-level checks only improve error
// messages, so late violations must still surface as conflicts.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || // postgres
		strings.Contains(msg, "UNIQUE constraint") // sqlite (tests)
}
