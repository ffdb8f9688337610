// Package error defines domain-specific errors for the Scheduling of Care application.
package error

import "errors"

// Care task domain errors.
var (
	// ErrTaskNotFound is returned when a care task is not found in the system.
	ErrTaskNotFound = errors.New("care task not found")

	// ErrInvalidRecurrenceInterval is returned when the recurrence interval is negative.
	ErrInvalidRecurrenceInterval = errors.New("recurrence interval must be a non-negative number of days")

	// ErrEndDateRequired is returned when a recurring task has no end date.
	ErrEndDateRequired = errors.New("end date is required for recurring tasks")

	// ErrOneOffEndDate is returned when a one-off task carries an end date.
	ErrOneOffEndDate = errors.New("one-off tasks must not have an end date")

	// ErrDateOutOfYear is returned when a date falls outside the active calendar year.
	ErrDateOutOfYear = errors.New("date is outside the active calendar year")

	// ErrEndBeforeStart is returned when the end date precedes the start date.
	ErrEndBeforeStart = errors.New("end date must not precede start date")

	// ErrInvalidTaskType is returned when the task type is unknown.
	ErrInvalidTaskType = errors.New("invalid task type")

	// ErrBudgetOnGeneralTask is returned when a yearly budget is set on a non-purchase task.
	ErrBudgetOnGeneralTask = errors.New("yearly budget is only valid for purchase tasks")

	// ErrNotAuthorizedForTask is returned when the user does not own the task's client.
	ErrNotAuthorizedForTask = errors.New("not authorized to access care task")

	// ErrTaskInactive is returned when an operation requires an active task.
	ErrTaskInactive = errors.New("care task is inactive")
)

// CareTaskErrorCode defines error codes for care task errors.
// Format: TSK-XXYYYY where XX is category and YYYY is specific error.
type CareTaskErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecurrence   CareTaskErrorCode = "TSK-010001"
	ErrCodeEndDateRequired     CareTaskErrorCode = "TSK-010002"
	ErrCodeOneOffEndDate       CareTaskErrorCode = "TSK-010003"
	ErrCodeInvalidTaskType     CareTaskErrorCode = "TSK-010004"
	ErrCodeBudgetOnGeneralTask CareTaskErrorCode = "TSK-010005"
	ErrCodeMissingTaskFields   CareTaskErrorCode = "TSK-010006"

	// Date window errors (02XXXX)
	ErrCodeDateOutOfYear  CareTaskErrorCode = "TSK-020001"
	ErrCodeEndBeforeStart CareTaskErrorCode = "TSK-020002"

	// Lookup/authorization errors (03XXXX)
	ErrCodeTaskNotFound      CareTaskErrorCode = "TSK-030001"
	ErrCodeNotAuthorizedTask CareTaskErrorCode = "TSK-030002"
	ErrCodeTaskInactive      CareTaskErrorCode = "TSK-030003"
)

// CareTaskError represents a care task error with code and message.
type CareTaskError struct {
	Code    CareTaskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CareTaskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CareTaskError) Unwrap() error {
	return e.Err
}

// NewCareTaskError creates a new CareTaskError with the given code and message.
func NewCareTaskError(code CareTaskErrorCode, message string, err error) *CareTaskError {
	return &CareTaskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
