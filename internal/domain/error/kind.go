// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Kind classifies a domain error independently of the domain that raised it.
type Kind string

const (
	KindValidation           Kind = "validation"
	KindReferentialIntegrity Kind = "referential_integrity"
	KindConflict             Kind = "conflict"
	KindNotFound             Kind = "not_found"
)

// Kind sentinels. Every typed domain error matches the sentinel of its kind
// through errors.Is.
var (
	// ErrValidation is matched by malformed-input errors.
	ErrValidation = errors.New("validation error")

	// ErrReferentialIntegrity is matched when a referenced id does not exist
	// or a source/category relationship is violated.
	ErrReferentialIntegrity = errors.New("referential integrity error")

	// ErrConflict is matched when a mutation is blocked by existing references.
	ErrConflict = errors.New("conflict error")

	// ErrNotFound is matched when an operation targets an id that does not exist.
	ErrNotFound = errors.New("not found")
)

// Sentinel returns the kind sentinel for k.
func (k Kind) Sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindReferentialIntegrity:
		return ErrReferentialIntegrity
	case KindConflict:
		return ErrConflict
	case KindNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// kindFromCode derives the kind from the two digits following the domain
// prefix of an error code (XXX-KKNNNN).
func kindFromCode(code string) Kind {
	if len(code) < 6 {
		return ""
	}
	switch code[4:6] {
	case "01":
		return KindValidation
	case "02":
		return KindReferentialIntegrity
	case "03":
		return KindConflict
	case "04":
		return KindNotFound
	default:
		return ""
	}
}

// Classified is implemented by every typed domain error.
type Classified interface {
	error
	ErrorKind() Kind
	ErrorCode() string
	ErrorMessage() string
	References() int64
}

// KindOf returns the kind of err, or an empty Kind for errors that are not
// domain errors.
func KindOf(err error) Kind {
	var classified Classified
	if errors.As(err, &classified) {
		return classified.ErrorKind()
	}
	return ""
}
