package domain

import (
	"errors"
	"fmt"
)

// Caller and provisioning errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrUnauthorized    = errors.New("insufficient privileges")

	ErrNotProvisioned  = errors.New("no confidios identity bound for user")
	ErrNoActiveSession = errors.New("no active confidios session")
	ErrBindingExists   = errors.New("confidios binding already exists")
	ErrBindingNotFound = errors.New("confidios binding not found")
)

// Remote call errors. Every Confidios operation maps its outcome onto
// exactly one of these (or a *RemoteError for other non-2xx statuses).
var (
	ErrRemoteAuthRejected    = errors.New("confidios rejected the session credentials")
	ErrRemoteAccessDenied    = errors.New("confidios denied access")
	ErrRemoteUnreachable     = errors.New("could not connect to confidios service")
	ErrInvalidRemoteResponse = errors.New("malformed confidios response")
)

// RemoteError carries the status code and detail text of a non-2xx
// Confidios response that is not an authentication or permission failure.
type RemoteError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("confidios %s failed with status %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("confidios %s failed with status %d", e.Op, e.StatusCode)
}

// ValidationError represents a caller input error with field context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
