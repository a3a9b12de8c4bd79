package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	writer          adapter.AtomicWriter
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository, writer adapter.AtomicWriter) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		writer:          writer,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	err := uc.writer.Do(ctx, func(ctx context.Context) error {
		if _, err := findTransaction(ctx, uc.transactionRepo, input.TransactionID); err != nil {
			return err
		}
		if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction deleted", "transactionID", input.TransactionID)

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
