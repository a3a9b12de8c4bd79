package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Type          *entity.TransactionType
	CategoryID    *uuid.UUID
	SourceID      *uuid.UUID
	Amount        *decimal.Decimal
	Date          *time.Time
	Description   *string
	EmployeeID    *uuid.UUID
	ClearEmployee bool // Set to true to remove the employee
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic. The patched
// record is validated as if it were recorded again.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	validator       validator
	writer          adapter.AtomicWriter
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	sourceRepo adapter.SourceRepository,
	writer adapter.AtomicWriter,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		validator:       validator{categoryRepo: categoryRepo, sourceRepo: sourceRepo},
		writer:          writer,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	var updated *entity.Transaction

	err := uc.writer.Do(ctx, func(ctx context.Context) error {
		current, err := findTransaction(ctx, uc.transactionRepo, input.TransactionID)
		if err != nil {
			return err
		}

		next := current.Clone()
		if input.Type != nil {
			next.Type = *input.Type
		}
		if input.CategoryID != nil {
			next.CategoryID = *input.CategoryID
		}
		if input.SourceID != nil {
			next.SourceID = *input.SourceID
		}
		if input.Amount != nil {
			next.Amount = *input.Amount
		}
		if input.Date != nil {
			next.TransactionDate = input.Date.UTC()
		}
		if input.Description != nil {
			next.Description = strings.TrimSpace(*input.Description)
		}
		switch {
		case input.ClearEmployee:
			next.EmployeeID = nil
		case input.EmployeeID != nil:
			employeeID := *input.EmployeeID
			next.EmployeeID = &employeeID
		}

		check := referenceCheck{
			newCategory: next.CategoryID != current.CategoryID,
			newSource:   next.SourceID != current.SourceID,
		}
		if err := uc.validator.validate(ctx, next, check); err != nil {
			return err
		}

		next.UpdatedAt = time.Now().UTC()
		if err := uc.transactionRepo.Update(ctx, next); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction updated", "transactionID", updated.ID)

	return &UpdateTransactionOutput{
		Transaction: updated,
	}, nil
}
