package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

// GetCategoryUseCase retrieves a single category.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute returns the category or a not found error.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return findCategory(ctx, uc.categoryRepo, id)
}
