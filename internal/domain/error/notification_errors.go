// Package error defines domain-specific errors for the Scheduling of Care application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrNotificationNotFound is returned when a notification job is not found.
	ErrNotificationNotFound = errors.New("notification job not found")

	// ErrPermanentSendFailure is returned for send failures that must not be retried.
	ErrPermanentSendFailure = errors.New("permanent notification send failure")

	// ErrTemporarySendFailure is returned for send failures that may be retried.
	ErrTemporarySendFailure = errors.New("temporary notification send failure")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	ErrCodePermanentSendFailure NotificationErrorCode = "NTF-010001"
	ErrCodeTemporarySendFailure NotificationErrorCode = "NTF-010002"
	ErrCodeNotificationNotFound NotificationErrorCode = "NTF-010003"
	ErrCodeNotificationQueue    NotificationErrorCode = "NTF-010004"
	ErrCodeInvalidTemplate      NotificationErrorCode = "NTF-010005"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanentSendFailure reports whether the error marks an unretryable send.
func IsPermanentSendFailure(err error) bool {
	var notifErr *NotificationError
	if errors.As(err, &notifErr) {
		return notifErr.Code == ErrCodePermanentSendFailure
	}
	return false
}
