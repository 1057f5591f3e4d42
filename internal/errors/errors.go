package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing collection failures.
const (
	ErrIO           = "IO"           // pseudo-file missing or unreadable
	ErrParse        = "PARSE"        // non-numeric or malformed field
	ErrMissing      = "MISSING"      // named file or device absent
	ErrData         = "DATA"         // semantically malformed content (e.g. too few fields)
	ErrCommand      = "CMD"          // external utility produced no usable output
	ErrNotConnected = "NOTCONNECTED" // every SSID strategy exhausted; not a fault
	ErrConfig       = "CONFIG"       // config file missing, unreadable, or invalid
)

// Error is a structured collection error with a code, message, and optional
// cause. The code distinguishes conditions that callers handle differently:
// a NOTCONNECTED error from the SSID chain renders as a disconnected state,
// while an IO error from /proc/stat fails the refresh.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// New creates a structured error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a structured error with a formatted message.
func Newf(code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a code and message, preserving the
// cause for errors.Is/errors.As inspection.
func Wrap(err error, code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var blockErr *Error
	if errors.As(err, &blockErr) {
		return blockErr.Code == code
	}
	return false
}
