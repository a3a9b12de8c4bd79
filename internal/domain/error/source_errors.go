// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Source domain errors.
var (
	// ErrSourceNotFound is returned when a source is not found in the system.
	ErrSourceNotFound = errors.New("source not found")

	// ErrSourceNameRequired is returned when the source name is empty.
	ErrSourceNameRequired = errors.New("source name is required")

	// ErrSourceNameTooLong is returned when the source name exceeds the maximum length.
	ErrSourceNameTooLong = errors.New("source name too long")

	// ErrSourceCategoryNotFound is returned when the source's category does not exist.
	ErrSourceCategoryNotFound = errors.New("source category not found")

	// ErrSourceCategoryLocked is returned when re-pointing a referenced source.
	ErrSourceCategoryLocked = errors.New("source category is locked by existing transactions")

	// ErrSourceInUse is returned when deleting a referenced source.
	ErrSourceInUse = errors.New("source is referenced by transactions")
)

// SourceErrorCode defines error codes for source errors.
// Format: SRC-KKNNNN where KK is the error kind and NNNN is the specific error.
type SourceErrorCode string

const (
	// Validation errors (01NNNN)
	ErrCodeSourceNameRequired  SourceErrorCode = "SRC-010001"
	ErrCodeSourceNameTooLong   SourceErrorCode = "SRC-010002"
	ErrCodeMissingSourceFields SourceErrorCode = "SRC-010003"
	ErrCodeInvalidSourceID     SourceErrorCode = "SRC-010004"

	// Referential integrity errors (02NNNN)
	ErrCodeSourceCategoryNotFound SourceErrorCode = "SRC-020001"

	// Conflict errors (03NNNN)
	ErrCodeSourceCategoryLocked SourceErrorCode = "SRC-030001"
	ErrCodeSourceInUse          SourceErrorCode = "SRC-030002"

	// Not found errors (04NNNN)
	ErrCodeSourceNotFound SourceErrorCode = "SRC-040001"
)

// SourceError represents a source error with code and message.
type SourceError struct {
	Code             SourceErrorCode
	Message          string
	ReferencingCount int64
	Err              error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *SourceError) Is(target error) bool {
	return target != nil && target == e.ErrorKind().Sentinel()
}

// ErrorKind returns the kind encoded in the error code.
func (e *SourceError) ErrorKind() Kind { return kindFromCode(string(e.Code)) }

// ErrorCode returns the error code as a string.
func (e *SourceError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the user-facing message.
func (e *SourceError) ErrorMessage() string { return e.Message }

// References returns the referencing count carried by conflict errors.
func (e *SourceError) References() int64 { return e.ReferencingCount }

// NewSourceError creates a new SourceError with the given code and message.
func NewSourceError(code SourceErrorCode, message string, err error) *SourceError {
	return &SourceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewSourceConflictError creates a SourceError that reports how many
// transactions reference the source.
func NewSourceConflictError(code SourceErrorCode, message string, referencingCount int64, err error) *SourceError {
	return &SourceError{
		Code:             code,
		Message:          message,
		ReferencingCount: referencingCount,
		Err:              err,
	}
}
