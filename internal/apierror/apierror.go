// Package apierror defines the error kinds exposed by the HTTP API.
// Handlers return these directly; the server's error handler renders
// them as a uniform JSON body.
package apierror

import (
	"fmt"
	"net/http"
)

// FieldError describes a single schema violation inside a ValidationError.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is an HTTP API error with a fixed status and machine-readable code.
type Error struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`

	// Internal carries the underlying cause for server-side logging.
	// It is never serialized to the client.
	Internal error `json:"-"`
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Internal }

// Validation reports a schema violation with per-field detail.
func Validation(message string, details ...FieldError) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "ERR_VALIDATION", Message: message, Details: details}
}

// Unauthorized reports bad credentials or a missing/invalid token.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "ERR_UNAUTHORIZED", Message: message}
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Code: "ERR_CONFLICT", Message: message}
}

// NotFound reports an absent resource. Resources owned by another user
// are reported with this same kind, so existence is not leaked.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "ERR_NOT_FOUND", Message: message}
}

// Internal reports an unexpected condition. The cause is logged
// server-side and never leaked to the client.
func Internal(cause error) *Error {
	return &Error{
		Status:   http.StatusInternalServerError,
		Code:     "ERR_INTERNAL",
		Message:  "Internal server error",
		Internal: cause,
	}
}
