package errors

import (
	"errors"
	"fmt"
)

// StoreError represents a statement execution failure during a request.
// The request that triggered it is abandoned with HTTP 500, but the server
// and its database connection stay up.
type StoreError struct {
	Op  string // the gateway operation, e.g. "list users"
	Err error  // the driver error
}

// NewStoreError creates a new store error for a gateway operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped driver error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// StartupError represents a fatal failure during process initialization.
// The process must exit non-zero before serving any request.
type StartupError struct {
	Stage string // e.g. "connect", "migrate"
	Err   error
}

// NewStartupError creates a new startup error for an initialization stage.
func NewStartupError(stage string, err error) *StartupError {
	return &StartupError{Stage: stage, Err: err}
}

// Error implements the error interface
func (e *StartupError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("startup failed: %v", e.Err)
}

// Unwrap returns the wrapped error
func (e *StartupError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err is (or wraps) a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
