// Package errors defines the coded errors of meetlayout.
//
// Every error the layout engine, the grid packer and the file readers return
// on bad input is an [*Error] with a [Code]. The CLI prints the code, the HTTP
// API turns it into a status and a JSON body.
//
// # Codes
//
//   - INVALID_*: a precondition failed. Validation errors also name the
//     offending field, e.g. "window.width" or "canvasHeight".
//   - *_NOT_FOUND: a file or session does not exist.
//   - UNSUPPORTED, INTERNAL_ERROR: everything else.
//
// The engine and the packer are total over well-formed input, so the core
// only ever returns INVALID_* codes.
//
// # Usage
//
//	if err := state.Validate(); errors.Is(err, errors.ErrCodeInvalidState) {
//	    log.Warn("state rejected", "field", errors.Field(err))
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, cause, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidState    Code = "INVALID_STATE"
	ErrCodeInvalidGrid     Code = "INVALID_GRID"
	ErrCodeInvalidDefaults Code = "INVALID_DEFAULTS"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPlan     Code = "INVALID_PLAN"

	// Resource not found errors
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error. Field is set by the validators and names the
// input that failed, using the JSON field path.
type Error struct {
	Code    Code
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Detail is UserMessage followed by the cause, if any.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return UserMessage(err)
}

// Invalid returns a validation error for field.
func Invalid(code Code, field, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Field = field
	return e
}

// Field returns the input field named by the outermost coded error, or ""
// when none is named.
func Field(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// IsPrecondition reports whether err is one of the INVALID_* validation codes.
func IsPrecondition(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidState, ErrCodeInvalidGrid,
		ErrCodeInvalidDefaults, ErrCodeInvalidFormat, ErrCodeInvalidPlan:
		return true
	}
	return false
}
