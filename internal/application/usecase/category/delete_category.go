package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	writer       adapter.AtomicWriter
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, writer adapter.AtomicWriter) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		writer:       writer,
	}
}

// Execute performs the category deletion. Referenced categories are kept and
// reported with the number of sources, transactions and children pointing at them.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	err := uc.writer.Do(ctx, func(ctx context.Context) error {
		if _, err := findCategory(ctx, uc.categoryRepo, input.CategoryID); err != nil {
			return err
		}

		refs, err := uc.categoryRepo.CountReferences(ctx, input.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to count category references: %w", err)
		}
		if refs.Total() > 0 {
			slog.Debug("Category delete blocked",
				"categoryID", input.CategoryID,
				"sources", refs.Sources,
				"transactions", refs.Transactions,
				"children", refs.Children,
			)
			return domainerror.NewCategoryConflictError(
				domainerror.ErrCodeCategoryInUse,
				fmt.Sprintf("category is referenced by %d entities", refs.Total()),
				refs.Total(),
				domainerror.ErrCategoryInUse,
			)
		}

		if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Category deleted", "categoryID", input.CategoryID)

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
