// Package errors provides sentinel errors for the gmrepo CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid flag or argument value.
	ErrValidation = errors.New("validation error")

	// ErrConnectivity indicates the GMrepo API could not be reached.
	ErrConnectivity = errors.New("connectivity error")

	// ErrAPI indicates the GMrepo API answered with an error status.
	ErrAPI = errors.New("api error")

	// ErrNotFound indicates a phenotype, taxon, project, or run was not found.
	ErrNotFound = errors.New("not found")
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks the error as already reported by the command layer.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// DetailError captures structured error information for API failures.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Endpoint is the API endpoint that produced the error (optional).
	Endpoint string

	// Status is the HTTP status line from the upstream response (optional).
	Status string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Endpoint != "" {
		b.WriteString("  Endpoint: ")
		b.WriteString(e.Endpoint)
		b.WriteString("\n")
	}
	if e.Status != "" {
		b.WriteString("  Status: ")
		b.WriteString(e.Status)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewAPIError creates an API error with endpoint and status details.
func NewAPIError(message, endpoint, status string) error {
	return &DetailError{
		Type:     "api request failed",
		Message:  message,
		Endpoint: endpoint,
		Status:   status,
		Cause:    ErrAPI,
	}
}

// NewConnectivityError creates a connectivity error with details.
func NewConnectivityError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "connectivity failed",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrConnectivity,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, endpoint, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Endpoint: endpoint,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
