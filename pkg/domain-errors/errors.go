// Package dErrors provides coded domain errors. Expected failures travel as
// values carrying a Code that transport layers translate into responses;
// control-flow panics are never used for them.
package dErrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	// CodeValidation marks payloads that failed a domain rule (missing
	// field, bad format, uniqueness or duplicate violation).
	CodeValidation Code = "validation_error"
	// CodeBadRequest marks requests that could not be parsed at all.
	CodeBadRequest Code = "bad_request"
	// CodeInvalidInput marks a single malformed input value.
	CodeInvalidInput Code = "invalid_input"
	// CodeNotFound marks a missing entity or a legitimately empty result
	// set where the operation's contract treats emptiness as absence.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a write that lost to an existing record.
	CodeConflict Code = "conflict"
	// CodeInvariantViolation marks an illegal state transition.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeUnauthorized marks a missing or unusable caller identity.
	CodeUnauthorized Code = "unauthorized"
	// CodeInternal marks unexpected infrastructure failures.
	CodeInternal Code = "internal_error"
)

// Error is a domain failure with a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err (or anything it wraps) carries the code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.cause
		if err == nil {
			return false
		}
	}
	return false
}

// Is is an alias of HasCode kept for call-site readability.
func Is(err error, code Code) bool { return HasCode(err, code) }

// CodeOf returns the outermost code carried by err, or CodeInternal when
// err is not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the outermost domain message, or a generic fallback.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}
