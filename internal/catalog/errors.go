package catalog

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	CodeNotFound    Code = "NOT_FOUND"
	CodeLoadFailure Code = "LOAD_FAILURE"
	CodeValidation  Code = "VALIDATION"
)

// Error is a catalog failure carrying a Code. Two Errors match under
// errors.Is when their codes are equal.
type Error struct {
	Code    Code
	Message string
	Details map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound    = &Error{Code: CodeNotFound, Message: "not found"}
	ErrLoadFailure = &Error{Code: CodeLoadFailure, Message: "load failed"}
	ErrValidation  = &Error{Code: CodeValidation, Message: "validation failed"}
)

// NotFoundf builds a not-found error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// LoadFailure wraps cause as a load failure. A nil cause yields the bare
// sentinel message.
func LoadFailure(cause error) *Error {
	return &Error{Code: CodeLoadFailure, Message: "load books", cause: cause}
}

// ErrorCode extracts the catalog code from err, or "" when err carries none.
func ErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
