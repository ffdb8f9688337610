// Package error defines domain-specific errors for the Scheduling of Care application.
package error

import "errors"

// Execution domain errors.
var (
	// ErrExecutionNotFound is returned when an execution is not found in the system.
	ErrExecutionNotFound = errors.New("execution not found")

	// ErrScheduledBeforeTaskStart is returned when an execution is scheduled before its task starts.
	ErrScheduledBeforeTaskStart = errors.New("scheduled date precedes task start date")

	// ErrInvalidStatusTransition is returned for transitions the lifecycle table forbids.
	ErrInvalidStatusTransition = errors.New("invalid execution status transition")

	// ErrInvalidExecutionStatus is returned for unknown status values.
	ErrInvalidExecutionStatus = errors.New("invalid execution status")

	// ErrNegativeCost is returned when an actual cost is negative.
	ErrNegativeCost = errors.New("actual cost must not be negative")

	// ErrInvalidQuantity is returned when the purchased quantity is below one.
	ErrInvalidQuantity = errors.New("quantity purchased must be at least 1")

	// ErrMissingRefundAmount is returned when a refund transition carries no amount.
	ErrMissingRefundAmount = errors.New("refund amount is required")

	// ErrNegativeRefundAmount is returned when a refund amount is negative.
	ErrNegativeRefundAmount = errors.New("refund amount must not be negative")

	// ErrRefundExceedsCost is returned when a refund amount exceeds the recorded cost.
	ErrRefundExceedsCost = errors.New("refund amount exceeds actual cost")

	// ErrFieldNotEditable is returned when a field is read-only for the current status.
	ErrFieldNotEditable = errors.New("field is not editable in the current status")
)

// ExecutionErrorCode defines error codes for execution errors.
// Format: EXE-XXYYYY where XX is category and YYYY is specific error.
type ExecutionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeCost           ExecutionErrorCode = "EXE-010001"
	ErrCodeInvalidQuantity        ExecutionErrorCode = "EXE-010002"
	ErrCodeMissingRefundAmount    ExecutionErrorCode = "EXE-010003"
	ErrCodeNegativeRefundAmount   ExecutionErrorCode = "EXE-010004"
	ErrCodeRefundExceedsCost      ExecutionErrorCode = "EXE-010005"
	ErrCodeFieldNotEditable       ExecutionErrorCode = "EXE-010006"
	ErrCodeMissingExecutionFields ExecutionErrorCode = "EXE-010007"
	ErrCodeInvalidStatus          ExecutionErrorCode = "EXE-010008"

	// Date range errors (02XXXX)
	ErrCodeScheduledBeforeTaskStart ExecutionErrorCode = "EXE-020001"

	// State transition errors (03XXXX)
	ErrCodeInvalidStatusTransition ExecutionErrorCode = "EXE-030001"

	// Lookup errors (04XXXX)
	ErrCodeExecutionNotFound ExecutionErrorCode = "EXE-040001"
)

// ExecutionError represents an execution error with code and message.
type ExecutionError struct {
	Code    ExecutionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewExecutionError creates a new ExecutionError with the given code and message.
func NewExecutionError(code ExecutionErrorCode, message string, err error) *ExecutionError {
	return &ExecutionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
