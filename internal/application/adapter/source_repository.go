package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// SourceRepository defines the interface for source persistence operations.
type SourceRepository interface {
	// Create creates a new source in the database.
	Create(ctx context.Context, source *entity.Source) error

	// FindByID retrieves a source by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Source, error)

	// FindAll retrieves every source ordered by name, then id.
	FindAll(ctx context.Context) ([]*entity.Source, error)

	// FindByCategory retrieves the sources of a category ordered by name, then id.
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Source, error)

	// Update updates an existing source in the database.
	Update(ctx context.Context, source *entity.Source) error

	// Delete removes a source from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountTransactions counts the transactions that reference the source.
	CountTransactions(ctx context.Context, id uuid.UUID) (int64, error)
}
