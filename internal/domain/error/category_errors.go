// Package error defines domain-specific errors for the Scheduling of Care application.
package error

import "errors"

// Care category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSubcategoryNotFound is returned when a subcategory is not found.
	ErrSubcategoryNotFound = errors.New("subcategory not found")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidColorFormat is returned when the category color format is invalid.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrNegativeBudget is returned when an annual budget is negative.
	ErrNegativeBudget = errors.New("annual budget must not be negative")

	// ErrNotAuthorizedToModifyCategory is returned when the user does not own the category's client.
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")

	// ErrSubcategoryWrongCategory is returned when a subcategory does not belong to the referenced category.
	ErrSubcategoryWrongCategory = errors.New("subcategory does not belong to category")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong    CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidColorFormat     CategoryErrorCode = "CAT-010002"
	ErrCodeNegativeBudget         CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound       CategoryErrorCode = "CAT-010004"
	ErrCodeSubcategoryNotFound    CategoryErrorCode = "CAT-010005"
	ErrCodeNotAuthorizedCategory  CategoryErrorCode = "CAT-010006"
	ErrCodeMissingCategoryFields  CategoryErrorCode = "CAT-010007"
	ErrCodeSubcategoryWrongParent CategoryErrorCode = "CAT-010008"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
