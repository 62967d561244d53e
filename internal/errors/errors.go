// Package errors provides the branding fetch error type and exit codes.
package errors

import (
	"errors"
	"fmt"
)

// FetchError is returned for every failure while fetching branding data.
// Its message only carries the requested URL; the cause stays reachable
// through Unwrap for diagnostics.
type FetchError struct {
	URL string // URL as given by the caller
	Err error  // Underlying cause (transport, status, decode)
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch branding data by URL: %s", e.URL)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// OpError describes a failed local operation such as writing an output file.
type OpError struct {
	Op   string // Operation being performed (e.g., "write temp file", "rename")
	Path string // File path involved
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Predefined causes wrapped inside a FetchError.
var (
	ErrUnexpectedStatus = fmt.Errorf("unexpected http status")
	ErrInvalidJSON      = fmt.Errorf("invalid JSON body")
)

// Exit codes - use these constants in CLI commands instead of hardcoding values.
const (
	ExitSuccess      = 0 // Success
	ExitGeneralError = 1 // General error (file I/O, permissions)
	ExitConfigError  = 2 // Configuration error (bad arguments or flags)
	ExitNetworkError = 3 // Network error (failed to fetch branding data)
)

// IsFetchError reports whether err is, or wraps, a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsError checks if the given error matches the target error using errors.Is.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
