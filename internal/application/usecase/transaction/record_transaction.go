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

// RecordTransactionInput represents the input for recording a transaction.
type RecordTransactionInput struct {
	Type        entity.TransactionType
	CategoryID  uuid.UUID
	SourceID    uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string     // Optional
	EmployeeID  *uuid.UUID // Optional
}

// RecordTransactionOutput represents the output of recording a transaction.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordTransactionUseCase validates and stores a new ledger entry in one
// atomic unit.
type RecordTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	validator       validator
	writer          adapter.AtomicWriter
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	sourceRepo adapter.SourceRepository,
	writer adapter.AtomicWriter,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		transactionRepo: transactionRepo,
		validator:       validator{categoryRepo: categoryRepo, sourceRepo: sourceRepo},
		writer:          writer,
	}
}

// Execute performs the transaction recording.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	transaction := entity.NewTransaction(
		input.Type,
		input.CategoryID,
		input.SourceID,
		input.Amount,
		input.Date,
		strings.TrimSpace(input.Description),
		input.EmployeeID,
	)

	err := uc.writer.Do(ctx, func(ctx context.Context) error {
		check := referenceCheck{newCategory: true, newSource: true}
		if err := uc.validator.validate(ctx, transaction, check); err != nil {
			return err
		}
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction recorded",
		"transactionID", transaction.ID,
		"type", transaction.Type,
		"amount", transaction.Amount.StringFixed(AmountScale),
	)

	return &RecordTransactionOutput{
		Transaction: transaction,
	}, nil
}
