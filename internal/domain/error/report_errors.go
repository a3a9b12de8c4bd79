// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Report domain errors.
var (
	// ErrMonthWithoutYear is returned when a month is given without a year.
	ErrMonthWithoutYear = errors.New("month requires a year")

	// ErrYearWithoutMonth is returned when a summary scope names a year but no month.
	ErrYearWithoutMonth = errors.New("year requires a month")

	// ErrInvalidMonth is returned when the month is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year is outside 1..9999.
	ErrInvalidYear = errors.New("year must be between 1 and 9999")

	// ErrInvalidScope is returned when the scope keyword is unknown or combined with a period.
	ErrInvalidScope = errors.New("invalid scope")

	// ErrMissingScope is returned when no scope is given at all.
	ErrMissingScope = errors.New("scope is required")

	// ErrInvalidTopExpenses is returned when the requested top expenses count is out of range.
	ErrInvalidTopExpenses = errors.New("top expenses must be between 1 and 100")

	// ErrExportThrottled is returned when a client exceeds the export request budget.
	ErrExportThrottled = errors.New("too many export requests")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-KKNNNN where KK is the error kind and NNNN is the specific error.
type ReportErrorCode string

const (
	// Validation errors (01NNNN)
	ErrCodeMonthWithoutYear   ReportErrorCode = "RPT-010001"
	ErrCodeYearWithoutMonth   ReportErrorCode = "RPT-010002"
	ErrCodeInvalidMonth       ReportErrorCode = "RPT-010003"
	ErrCodeInvalidYear        ReportErrorCode = "RPT-010004"
	ErrCodeInvalidScope       ReportErrorCode = "RPT-010005"
	ErrCodeMissingScope       ReportErrorCode = "RPT-010006"
	ErrCodeInvalidTopExpenses ReportErrorCode = "RPT-010007"

	// Throttling errors (05NNNN)
	ErrCodeExportThrottled ReportErrorCode = "RPT-050001"

	// Internal errors (99NNNN)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *ReportError) Is(target error) bool {
	return target != nil && target == e.ErrorKind().Sentinel()
}

// ErrorKind returns the kind encoded in the error code.
func (e *ReportError) ErrorKind() Kind { return kindFromCode(string(e.Code)) }

// ErrorCode returns the error code as a string.
func (e *ReportError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the user-facing message.
func (e *ReportError) ErrorMessage() string { return e.Message }

// References is always zero for report errors.
func (e *ReportError) References() int64 { return 0 }

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
