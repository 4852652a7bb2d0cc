// Package dErrors provides coded domain errors.
//
// Stores and infrastructure return sentinel errors (pkg/platform/sentinel);
// services translate them into coded domain errors; transport layers map codes
// to status codes. The code travels with the error through wrapping so callers
// can branch on HasCode without string matching.
package dErrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping and caller branching.
type Code string

const (
	CodeInvalidInput       Code = "invalid_input"
	CodeBadRequest         Code = "bad_request"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeUnavailable        Code = "unavailable"
	CodeInvariantViolation Code = "invariant_violation"
	CodeInternal           Code = "internal"
)

// Error is a coded domain error, optionally wrapping a cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates a coded domain error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. The original cause
// stays reachable via errors.Is/As so callers never lose the root failure.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.Cause
		de = nil
	}
	return false
}

// CodeOf returns the outermost code in the chain, or CodeInternal when the
// error carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
