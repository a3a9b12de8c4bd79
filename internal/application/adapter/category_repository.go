// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByType retrieves categories of the given type ordered by name, then id.
	// Inactive categories are skipped when activeOnly is set.
	FindByType(ctx context.Context, categoryType entity.CategoryType, activeOnly bool) ([]*entity.Category, error)

	// FindAll retrieves every category ordered by name, then id.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountReferences counts the sources, transactions and child categories
	// that reference the category.
	CountReferences(ctx context.Context, id uuid.UUID) (entity.CategoryReferences, error)

	// CountTransactionsWithoutEmployee counts the category's transactions
	// that carry no employee.
	CountTransactionsWithoutEmployee(ctx context.Context, id uuid.UUID) (int64, error)
}
