// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrParentCategoryNotFound is returned when the requested parent does not exist.
	ErrParentCategoryNotFound = errors.New("parent category not found")

	// ErrParentCategoryTypeMismatch is returned when parent and child types differ.
	ErrParentCategoryTypeMismatch = errors.New("parent category has a different type")

	// ErrCategoryCycle is returned when a parent assignment would create a cycle.
	ErrCategoryCycle = errors.New("category hierarchy cycle")

	// ErrEmployeeFlagOnIncome is returned when requires_employee is set on an income category.
	ErrEmployeeFlagOnIncome = errors.New("only expense categories can require an employee")

	// ErrCategoryTypeLocked is returned when changing the type of a referenced category.
	ErrCategoryTypeLocked = errors.New("category type is locked by existing references")

	// ErrCategoryInUse is returned when deleting a referenced category.
	ErrCategoryInUse = errors.New("category is referenced")

	// ErrEmployeeFlagLocked is returned when requiring an employee on a category
	// that already holds transactions without one.
	ErrEmployeeFlagLocked = errors.New("category has transactions without an employee")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-KKNNNN where KK is the error kind and NNNN is the specific error.
type CategoryErrorCode string

const (
	// Validation errors (01NNNN)
	ErrCodeCategoryNameRequired      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong       CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryType       CategoryErrorCode = "CAT-010003"
	ErrCodeParentCategoryNotFound    CategoryErrorCode = "CAT-010004"
	ErrCodeParentCategoryMismatch    CategoryErrorCode = "CAT-010005"
	ErrCodeCategoryCycle             CategoryErrorCode = "CAT-010006"
	ErrCodeEmployeeFlagOnIncome      CategoryErrorCode = "CAT-010007"
	ErrCodeMissingCategoryFields     CategoryErrorCode = "CAT-010008"
	ErrCodeInvalidCategoryID         CategoryErrorCode = "CAT-010009"

	// Conflict errors (03NNNN)
	ErrCodeCategoryTypeLocked CategoryErrorCode = "CAT-030001"
	ErrCodeCategoryInUse      CategoryErrorCode = "CAT-030002"
	ErrCodeEmployeeFlagLocked CategoryErrorCode = "CAT-030003"

	// Not found errors (04NNNN)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-040001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code             CategoryErrorCode
	Message          string
	ReferencingCount int64
	Err              error
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

// Is matches the sentinel of the error's kind.
func (e *CategoryError) Is(target error) bool {
	return target != nil && target == e.ErrorKind().Sentinel()
}

// ErrorKind returns the kind encoded in the error code.
func (e *CategoryError) ErrorKind() Kind { return kindFromCode(string(e.Code)) }

// ErrorCode returns the error code as a string.
func (e *CategoryError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the user-facing message.
func (e *CategoryError) ErrorMessage() string { return e.Message }

// References returns the referencing count carried by conflict errors.
func (e *CategoryError) References() int64 { return e.ReferencingCount }

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCategoryConflictError creates a CategoryError that reports how many
// entities reference the category.
func NewCategoryConflictError(code CategoryErrorCode, message string, referencingCount int64, err error) *CategoryError {
	return &CategoryError{
		Code:             code,
		Message:          message,
		ReferencingCount: referencingCount,
		Err:              err,
	}
}
