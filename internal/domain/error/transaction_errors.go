// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is missing.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrAmountPrecision is returned when the amount has more than two fractional digits.
	ErrAmountPrecision = errors.New("amount has too many decimal places")

	// ErrTransactionTypeMismatch is returned when the type disagrees with the category type.
	ErrTransactionTypeMismatch = errors.New("transaction type does not match category type")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrEmployeeRequired is returned when the category requires an employee and none is given.
	ErrEmployeeRequired = errors.New("employee is required for this category")

	// ErrInactiveCategory is returned when a new reference targets an inactive category.
	ErrInactiveCategory = errors.New("category is inactive")

	// ErrInactiveSource is returned when a new reference targets an inactive source.
	ErrInactiveSource = errors.New("source is inactive")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrSourceNotFoundForTransaction is returned when the specified source is not found.
	ErrSourceNotFoundForTransaction = errors.New("source not found")

	// ErrSourceCategoryMismatch is returned when the source belongs to another category.
	ErrSourceCategoryMismatch = errors.New("source does not belong to category")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-KKNNNN where KK is the error kind and NNNN is the specific error.
type TransactionErrorCode string

const (
	// Validation errors (01NNNN)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeAmountPrecision          TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionTypeMismatch  TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010006"
	ErrCodeEmployeeRequired         TransactionErrorCode = "TXN-010007"
	ErrCodeInactiveCategory         TransactionErrorCode = "TXN-010008"
	ErrCodeInactiveSource           TransactionErrorCode = "TXN-010009"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010010"
	ErrCodeInvalidTransactionID     TransactionErrorCode = "TXN-010011"
	ErrCodeInvalidPeriod            TransactionErrorCode = "TXN-010012"

	// Referential integrity errors (02NNNN)
	ErrCodeTxnCategoryNotFound    TransactionErrorCode = "TXN-020001"
	ErrCodeTxnSourceNotFound      TransactionErrorCode = "TXN-020002"
	ErrCodeSourceCategoryMismatch TransactionErrorCode = "TXN-020003"

	// Not found errors (04NNNN)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-040001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *TransactionError) Is(target error) bool {
	return target != nil && target == e.ErrorKind().Sentinel()
}

// ErrorKind returns the kind encoded in the error code.
func (e *TransactionError) ErrorKind() Kind { return kindFromCode(string(e.Code)) }

// ErrorCode returns the error code as a string.
func (e *TransactionError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the user-facing message.
func (e *TransactionError) ErrorMessage() string { return e.Message }

// References is always zero for transaction errors.
func (e *TransactionError) References() int64 { return 0 }

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
