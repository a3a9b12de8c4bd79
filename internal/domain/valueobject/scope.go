// Package valueobject contains domain value objects for the ledger.
package valueobject

import (
	"fmt"
	"strings"
	"time"

	domainerror "github.com/print-shop/ledger/internal/domain/error"
)

const (
	minYear = 1
	maxYear = 9999
)

// Period identifies a single calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates year and month and builds a Period.
func NewPeriod(year, month int) (Period, error) {
	if err := ValidateYear(year); err != nil {
		return Period{}, err
	}
	if month < 1 || month > 12 {
		return Period{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("month %d is out of range", month),
			domainerror.ErrInvalidMonth,
		)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// ValidateYear checks that year lies in 1..9999.
func ValidateYear(year int) error {
	if year < minYear || year > maxYear {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("year %d is out of range", year),
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}

// PeriodOf returns the period that contains t when observed in loc.
func PeriodOf(t time.Time, loc *time.Location) Period {
	local := t.In(loc)
	return Period{Year: local.Year(), Month: local.Month()}
}

// Bounds returns the half-open interval [start, end) of the month in loc,
// expressed in UTC.
func (p Period) Bounds(loc *time.Location) (start, end time.Time) {
	first := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
	return first.UTC(), first.AddDate(0, 1, 0).UTC()
}

// YearBounds returns the half-open interval [start, end) of year in loc,
// expressed in UTC.
func YearBounds(year int, loc *time.Location) (start, end time.Time) {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return first.UTC(), first.AddDate(1, 0, 0).UTC()
}

// After reports whether p is a later month than other.
func (p Period) After(other Period) bool {
	if p.Year != other.Year {
		return p.Year > other.Year
	}
	return p.Month > other.Month
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Label returns a human-readable label such as "May 2024".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.Month.String()[:3], p.Year)
}

// ScopeKind distinguishes the two report scopes.
type ScopeKind string

const (
	ScopeKindMonth ScopeKind = "month"
	ScopeKindAll   ScopeKind = "all"
)

// Scope is the time window a report or listing covers: one calendar month or
// all time. The zero value is not a valid scope.
type Scope struct {
	kind   ScopeKind
	period Period
}

// MonthScope returns a scope covering a single month.
func MonthScope(p Period) Scope {
	return Scope{kind: ScopeKindMonth, period: p}
}

// AllScope returns the unbounded scope.
func AllScope() Scope {
	return Scope{kind: ScopeKindAll}
}

// Kind returns the scope kind.
func (s Scope) Kind() ScopeKind { return s.kind }

// IsAll reports whether the scope is unbounded.
func (s Scope) IsAll() bool { return s.kind == ScopeKindAll }

// Period returns the month covered by a month scope. ok is false for the
// unbounded scope.
func (s Scope) Period() (p Period, ok bool) {
	return s.period, s.kind == ScopeKindMonth
}

// String returns "all" or the YYYY-MM of the month.
func (s Scope) String() string {
	if s.IsAll() {
		return string(ScopeKindAll)
	}
	return s.period.String()
}

// ParseScope builds a Scope from loosely typed request values. raw may be
// empty, "month" or "all". Year and month must be given together for a month
// scope and must be absent for the unbounded one.
func ParseScope(raw string, year, month *int) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ScopeKindAll):
		if year != nil || month != nil {
			return Scope{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidScope,
				"scope=all cannot be combined with year or month",
				domainerror.ErrInvalidScope,
			)
		}
		return AllScope(), nil
	case "", string(ScopeKindMonth):
	default:
		return Scope{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidScope,
			fmt.Sprintf("unknown scope %q", raw),
			domainerror.ErrInvalidScope,
		)
	}

	switch {
	case year == nil && month == nil:
		return Scope{}, domainerror.NewReportError(
			domainerror.ErrCodeMissingScope,
			"year and month, or scope=all, are required",
			domainerror.ErrMissingScope,
		)
	case year == nil:
		return Scope{}, domainerror.NewReportError(
			domainerror.ErrCodeMonthWithoutYear,
			"month was given without a year",
			domainerror.ErrMonthWithoutYear,
		)
	case month == nil:
		return Scope{}, domainerror.NewReportError(
			domainerror.ErrCodeYearWithoutMonth,
			"year was given without a month",
			domainerror.ErrYearWithoutMonth,
		)
	}

	p, err := NewPeriod(*year, *month)
	if err != nil {
		return Scope{}, err
	}
	return MonthScope(p), nil
}
