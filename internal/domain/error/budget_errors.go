// Package error defines domain-specific errors for the Scheduling of Care application.
package error

import "errors"

// Budget derivation domain errors.
var (
	// ErrInvalidThresholds is returned when alert thresholds are out of range or misordered.
	ErrInvalidThresholds = errors.New("alert thresholds must satisfy 0 < warning <= critical <= 1")

	// ErrInvalidProjectionWindow is returned when the projection window is empty or inverted.
	ErrInvalidProjectionWindow = errors.New("projection window end must be after start")
)

// BudgetErrorCode defines error codes for budget derivation errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeInvalidThresholds       BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidProjectionWindow BudgetErrorCode = "BGT-010002"
)

// BudgetError represents a budget derivation error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
