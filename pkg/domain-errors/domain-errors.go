// Package domainerrors carries a stable failure code alongside an error so the
// HTTP layer can translate service and response-builder failures in one place.
package domainerrors

import "errors"

// Code names a failure category in domain terms. httputil owns the mapping to
// status codes and wire codes.
type Code string

const (
	CodeNotFound     Code = "not_found"
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	CodeValidation   Code = "validation_failed"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeInternal     Code = "internal_error"
	// CodeInvariantViolation marks a programming error, such as a response
	// constructor called without one of its collaborators.
	CodeInvariantViolation Code = "invariant_violation"
)

// Error is a coded failure. Message is safe to show a client for 4xx codes.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code, ignoring messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// New returns a coded error with no cause.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to err. A code already present somewhere in
// err's chain wins over the one passed in.
func Wrap(err error, code Code, msg string) error {
	if existing, ok := CodeOf(err); ok {
		code = existing
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// Required reports a missing constructor argument as an invariant violation.
func Required(name string) error {
	return &Error{Code: CodeInvariantViolation, Message: name + " is required"}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Code, true
}

// HasCode reports whether err carries code.
func HasCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
