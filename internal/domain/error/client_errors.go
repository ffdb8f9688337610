// Package error defines domain-specific errors for the Scheduling of Care application.
package error

import "errors"

// Client profile domain errors.
var (
	// ErrClientNotFound is returned when a client profile is not found.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientNameRequired is returned when a client is created without a name.
	ErrClientNameRequired = errors.New("client name is required")

	// ErrNotAuthorizedForClient is returned when a user does not own the client.
	ErrNotAuthorizedForClient = errors.New("not authorized to access client")
)

// ClientErrorCode defines error codes for client profile errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	ErrCodeClientNameRequired   ClientErrorCode = "CLI-010001"
	ErrCodeClientNotFound       ClientErrorCode = "CLI-010002"
	ErrCodeNotAuthorizedClient  ClientErrorCode = "CLI-010003"
	ErrCodeMissingClientFields  ClientErrorCode = "CLI-010004"
	ErrCodeInvalidClientPayload ClientErrorCode = "CLI-010005"
)

// ClientError represents a client profile error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
