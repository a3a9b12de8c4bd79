package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

// GetTransactionUseCase retrieves a single transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute returns the transaction or a not found error.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return findTransaction(ctx, uc.transactionRepo, id)
}
