package category

import (
	"context"
	"fmt"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Type       *entity.CategoryType // Optional, all types when nil
	ActiveOnly bool
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories ordered by name, then id.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}

		categories, err := uc.categoryRepo.FindByType(ctx, *input.Type, input.ActiveOnly)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		return &ListCategoriesOutput{Categories: categories}, nil
	}

	all, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*entity.Category, 0, len(all))
	for _, c := range all {
		if input.ActiveOnly && !c.IsActive {
			continue
		}
		categories = append(categories, c)
	}

	return &ListCategoriesOutput{Categories: categories}, nil
}
