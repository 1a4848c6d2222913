// Package domainerrors defines coded errors shared across modules so that
// transport code can map failures to HTTP statuses without inspecting
// free-form error strings.
package domainerrors

import "errors"

// Code identifies the class of a domain error. The value doubles as the wire
// "error" field in JSON error responses.
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeBadRequest   Code = "bad_request"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal_error"
	CodeUnauthorized Code = "unauthorized"
	CodeTimeout      Code = "timeout"
)

// Error is a coded domain error with a human-readable description.
type Error struct {
	Code        Code
	Description string
}

// New creates a coded domain error.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Description
}

// CodeOf extracts the code from an error chain. Unrecognized errors report
// CodeInternal so nothing leaks implementation detail to clients by default.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// DescriptionOf extracts the client-safe description from an error chain.
// Unrecognized errors yield an empty description.
func DescriptionOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Description
	}
	return ""
}
