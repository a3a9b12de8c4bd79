package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/print-shop/ledger/internal/application/usecase/report"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	summaryUseCase *report.ComputeSummaryUseCase
	exportUseCase  *report.ExportSummaryUseCase
	periodsUseCase *report.ListActivePeriodsUseCase
	location       *time.Location
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.ComputeSummaryUseCase,
	exportUseCase *report.ExportSummaryUseCase,
	periodsUseCase *report.ListActivePeriodsUseCase,
	loc *time.Location,
) *ReportController {
	return &ReportController{
		summaryUseCase: summaryUseCase,
		exportUseCase:  exportUseCase,
		periodsUseCase: periodsUseCase,
		location:       loc,
	}
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	input, ok := c.bindSummaryInput(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary, c.location))
}

// Export handles GET /reports/summary/export requests.
func (c *ReportController) Export(ctx *gin.Context) {
	input, ok := c.bindSummaryInput(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// Periods handles GET /reports/periods requests.
func (c *ReportController) Periods(ctx *gin.Context) {
	periods, err := c.periodsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodListResponse(periods))
}

func (c *ReportController) bindSummaryInput(ctx *gin.Context) (report.ComputeSummaryInput, bool) {
	var input report.ComputeSummaryInput

	query, err := bindPeriodQuery(ctx)
	if err != nil {
		handleError(ctx, err)
		return input, false
	}
	if input.Scope, err = query.scope(); err != nil {
		handleError(ctx, err)
		return input, false
	}
	if input.TopExpenses, err = optionalTopExpenses(ctx); err != nil {
		handleError(ctx, err)
		return input, false
	}

	if raw := ctx.Query("include_empty_categories"); raw != "" {
		includeEmpty, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeInvalidScope), "include_empty_categories must be true or false", err)
			return input, false
		}
		input.IncludeEmptyCategories = includeEmpty
	}

	return input, true
}
