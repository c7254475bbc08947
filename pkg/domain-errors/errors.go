// Package domainerrors carries transport-agnostic error categories.
//
// Services return *Error values (optionally wrapping a cause) and the HTTP layer
// translates the Code into a status. Stores should not use this package; they
// return pkg/platform/sentinel facts that services translate.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error category.
type Code string

const (
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation_error"
	CodeInvalidInput       Code = "invalid_input"
	CodeInvariantViolation Code = "invariant_violation"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeLimitExceeded      Code = "limit_exceeded"
	CodePaymentRequired    Code = "payment_required"
	CodeUnavailable        Code = "unavailable"
	CodeInternal           Code = "internal_error"
)

// Error is a categorized domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
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

// New creates an error with the given category and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a category and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether the outermost *Error in err's chain has the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias of HasCode kept for call sites that read better as a predicate.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the category of the outermost *Error, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
