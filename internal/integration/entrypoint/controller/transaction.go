package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/print-shop/ledger/internal/application/usecase/transaction"
	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	recordUseCase *transaction.RecordTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	location      *time.Location
}

// NewTransactionController creates a new transaction controller instance.
// Calendar dates in requests and responses are read in loc.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	recordUseCase *transaction.RecordTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	loc *time.Location,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		recordUseCase: recordUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		location:      loc,
	}
}

// List handles GET /transactions requests.
// Accepts year and month, year alone, or scope=all.
func (c *TransactionController) List(ctx *gin.Context) {
	query, err := bindPeriodQuery(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}

	var output *transaction.ListTransactionsOutput
	if query.yearOnly() {
		output, err = c.listUseCase.ByYear(ctx.Request.Context(), *query.Year)
	} else {
		scope, scopeErr := query.scope()
		if scopeErr != nil {
			handleError(ctx, scopeErr)
			return
		}
		output, err = c.listUseCase.ByScope(ctx.Request.Context(), scope)
	}
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, c.location))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	transactionID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidTransactionID), "Invalid transaction ID format", err)
		return
	}

	txn, err := c.getUseCase.Execute(ctx.Request.Context(), transactionID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(txn, c.location))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid request body", err)
		return
	}

	categoryID, err := parseUUID(req.CategoryID)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid category ID format", err)
		return
	}
	sourceID, err := parseUUID(req.SourceID)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid source ID format", err)
		return
	}
	employeeID, err := parseOptionalUUID(req.EmployeeID)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid employee ID format", err)
		return
	}
	date, err := dto.ParseDate(req.Date, c.location)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidTransactionDate), "Invalid date format, expected YYYY-MM-DD", err)
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), transaction.RecordTransactionInput{
		Type:        entity.TransactionType(req.Type),
		CategoryID:  categoryID,
		SourceID:    sourceID,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
		EmployeeID:  employeeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction, c.location))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidTransactionID), "Invalid transaction ID format", err)
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid request body", err)
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		Amount:        req.Amount,
		Description:   req.Description,
		ClearEmployee: req.ClearEmployee,
	}
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}
	if input.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid category ID format", err)
		return
	}
	if input.SourceID, err = parseOptionalUUID(req.SourceID); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid source ID format", err)
		return
	}
	if input.EmployeeID, err = parseOptionalUUID(req.EmployeeID); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingTransactionFields), "Invalid employee ID format", err)
		return
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date, c.location)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeInvalidTransactionDate), "Invalid date format, expected YYYY-MM-DD", err)
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction, c.location))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidTransactionID), "Invalid transaction ID format", err)
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{TransactionID: transactionID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
