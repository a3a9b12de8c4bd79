package category

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
// Nil fields are left untouched.
type UpdateCategoryInput struct {
	CategoryID       uuid.UUID
	Name             *string
	Type             *entity.CategoryType
	ParentCategoryID *uuid.UUID
	ClearParent      bool // Detaches the category from its parent; wins over ParentCategoryID
	IsActive         *bool
	RequiresEmployee *bool
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	writer       adapter.AtomicWriter
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, writer adapter.AtomicWriter) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		writer:       writer,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	var updated *entity.Category

	err := uc.writer.Do(ctx, func(ctx context.Context) error {
		category, err := findCategory(ctx, uc.categoryRepo, input.CategoryID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			name, err := normalizeName(*input.Name)
			if err != nil {
				return err
			}
			category.Name = name
		}

		typeChanged := false
		if input.Type != nil && *input.Type != category.Type {
			if err := validateType(*input.Type); err != nil {
				return err
			}

			refs, err := uc.categoryRepo.CountReferences(ctx, category.ID)
			if err != nil {
				return fmt.Errorf("failed to count category references: %w", err)
			}
			if refs.Total() > 0 {
				return domainerror.NewCategoryConflictError(
					domainerror.ErrCodeCategoryTypeLocked,
					fmt.Sprintf("category type cannot change while %d entities reference it", refs.Total()),
					refs.Total(),
					domainerror.ErrCategoryTypeLocked,
				)
			}

			category.Type = *input.Type
			typeChanged = true
		}

		parentChanged := false
		switch {
		case input.ClearParent:
			category.ParentCategoryID = nil
		case input.ParentCategoryID != nil:
			parentID := *input.ParentCategoryID
			parentChanged = category.ParentCategoryID == nil || *category.ParentCategoryID != parentID
			category.ParentCategoryID = &parentID
		}

		if category.ParentCategoryID != nil && (parentChanged || typeChanged) {
			if err := validateParent(ctx, uc.categoryRepo, &category.ID, *category.ParentCategoryID, category.Type); err != nil {
				return err
			}
		}

		if input.IsActive != nil {
			category.IsActive = *input.IsActive
		}
		if input.RequiresEmployee != nil {
			if *input.RequiresEmployee && !category.RequiresEmployee {
				missing, err := uc.categoryRepo.CountTransactionsWithoutEmployee(ctx, category.ID)
				if err != nil {
					return fmt.Errorf("failed to count transactions without employee: %w", err)
				}
				if missing > 0 {
					return domainerror.NewCategoryConflictError(
						domainerror.ErrCodeEmployeeFlagLocked,
						fmt.Sprintf("%d transactions of this category have no employee", missing),
						missing,
						domainerror.ErrEmployeeFlagLocked,
					)
				}
			}
			category.RequiresEmployee = *input.RequiresEmployee
		}
		if err := validateEmployeeFlag(category.Type, category.RequiresEmployee); err != nil {
			return err
		}

		category.UpdatedAt = time.Now().UTC()

		if err := uc.categoryRepo.Update(ctx, category); err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}

		updated = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Category updated", "categoryID", updated.ID)

	return &UpdateCategoryOutput{
		Category: updated,
	}, nil
}
