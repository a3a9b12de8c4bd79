package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// Listings are ordered by transaction date descending, then id ascending.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByDateRange retrieves transactions dated within [start, end).
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error)

	// FindAll retrieves every transaction of the ledger.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindDates retrieves the transaction date of every transaction.
	FindDates(ctx context.Context) ([]time.Time, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
