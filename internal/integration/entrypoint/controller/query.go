package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/domain/valueobject"
)

// periodQuery is the year/month/scope triple shared by listing and report endpoints.
type periodQuery struct {
	Scope string
	Year  *int
	Month *int
}

// bindPeriodQuery reads scope, year and month from the query string.
func bindPeriodQuery(ctx *gin.Context) (periodQuery, error) {
	q := periodQuery{Scope: ctx.Query("scope")}

	var err error
	if q.Year, err = optionalInt(ctx, "year", domainerror.ErrCodeInvalidYear, domainerror.ErrInvalidYear); err != nil {
		return q, err
	}
	if q.Month, err = optionalInt(ctx, "month", domainerror.ErrCodeInvalidMonth, domainerror.ErrInvalidMonth); err != nil {
		return q, err
	}
	return q, nil
}

// yearOnly reports whether the query names a year and nothing else.
func (q periodQuery) yearOnly() bool {
	return q.Scope == "" && q.Year != nil && q.Month == nil
}

func (q periodQuery) scope() (valueobject.Scope, error) {
	return valueobject.ParseScope(q.Scope, q.Year, q.Month)
}

func optionalInt(ctx *gin.Context, key string, code domainerror.ReportErrorCode, sentinel error) (*int, error) {
	raw, ok := ctx.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerror.NewReportError(code, key+" must be an integer", sentinel)
	}
	return &v, nil
}

// optionalTopExpenses reads the top query parameter; zero means the configured default.
func optionalTopExpenses(ctx *gin.Context) (int, error) {
	v, err := optionalInt(ctx, "top", domainerror.ErrCodeInvalidTopExpenses, domainerror.ErrInvalidTopExpenses)
	if err != nil || v == nil {
		return 0, err
	}
	if *v == 0 {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidTopExpenses,
			"top must be between 1 and 100",
			domainerror.ErrInvalidTopExpenses,
		)
	}
	return *v, nil
}
