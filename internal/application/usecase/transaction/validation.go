// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for descriptions.
	MaxDescriptionLength = 500
	// AmountScale is the number of fractional digits an amount may carry.
	AmountScale = 2
)

// maxAmount is the first value that no longer fits decimal(15,2).
var maxAmount = decimal.New(1, 13)

// validateFields checks the fields of a transaction that do not depend on
// other entities.
func validateFields(t *entity.Transaction) error {
	if !t.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if t.TransactionDate.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if !t.Amount.IsPositive() || t.Amount.GreaterThanOrEqual(maxAmount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero and below 10^13",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !t.Amount.Equal(t.Amount.Round(AmountScale)) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeAmountPrecision,
			fmt.Sprintf("amount must have at most %d decimal places", AmountScale),
			domainerror.ErrAmountPrecision,
		)
	}

	if utf8.RuneCountInString(t.Description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	return nil
}

// referenceCheck describes which references a write introduces. Inactive
// categories and sources are rejected only when the write points at them anew.
type referenceCheck struct {
	newCategory bool
	newSource   bool
}

// validator checks a transaction against the category and source stores.
type validator struct {
	categoryRepo adapter.CategoryRepository
	sourceRepo   adapter.SourceRepository
}

func (v validator) validate(ctx context.Context, t *entity.Transaction, check referenceCheck) error {
	if err := validateFields(t); err != nil {
		return err
	}

	category, err := v.categoryRepo.FindByID(ctx, t.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				fmt.Sprintf("category %s does not exist", t.CategoryID),
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	source, err := v.sourceRepo.FindByID(ctx, t.SourceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSourceNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnSourceNotFound,
				fmt.Sprintf("source %s does not exist", t.SourceID),
				domainerror.ErrSourceNotFoundForTransaction,
			)
		}
		return fmt.Errorf("failed to find source: %w", err)
	}

	if !t.Type.Matches(category.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionTypeMismatch,
			fmt.Sprintf("transaction type %s does not match category type %s", t.Type, category.Type),
			domainerror.ErrTransactionTypeMismatch,
		)
	}

	if source.CategoryID != category.ID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeSourceCategoryMismatch,
			"source does not belong to the transaction category",
			domainerror.ErrSourceCategoryMismatch,
		)
	}

	if check.newCategory && !category.IsActive {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInactiveCategory,
			"category is inactive",
			domainerror.ErrInactiveCategory,
		)
	}

	if check.newSource && !source.IsActive {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInactiveSource,
			"source is inactive",
			domainerror.ErrInactiveSource,
		)
	}

	if category.RequiresEmployee && (t.EmployeeID == nil || *t.EmployeeID == uuid.Nil) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmployeeRequired,
			fmt.Sprintf("category %q requires an employee", category.Name),
			domainerror.ErrEmployeeRequired,
		)
	}

	return nil
}

func findTransaction(ctx context.Context, repo adapter.TransactionRepository, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return transaction, nil
}
