package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name             string
	Type             entity.CategoryType
	ParentCategoryID *uuid.UUID // Optional
	RequiresEmployee bool
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	writer       adapter.AtomicWriter
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, writer adapter.AtomicWriter) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		writer:       writer,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateEmployeeFlag(input.Type, input.RequiresEmployee); err != nil {
		return nil, err
	}

	category := entity.NewCategory(name, input.Type, input.ParentCategoryID, input.RequiresEmployee)

	err = uc.writer.Do(ctx, func(ctx context.Context) error {
		if input.ParentCategoryID != nil {
			if err := validateParent(ctx, uc.categoryRepo, nil, *input.ParentCategoryID, input.Type); err != nil {
				return err
			}
		}

		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Category created", "categoryID", category.ID, "type", category.Type)

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
