package source

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

// UpdateSourceInput represents the input for source update.
// Nil fields are left untouched.
type UpdateSourceInput struct {
	SourceID   uuid.UUID
	Name       *string
	CategoryID *uuid.UUID
	IsActive   *bool
}

// UpdateSourceOutput represents the output of source update.
type UpdateSourceOutput struct {
	Source *entity.Source
}

// UpdateSourceUseCase handles source update logic.
type UpdateSourceUseCase struct {
	sourceRepo   adapter.SourceRepository
	categoryRepo adapter.CategoryRepository
	writer       adapter.AtomicWriter
}

// NewUpdateSourceUseCase creates a new UpdateSourceUseCase instance.
func NewUpdateSourceUseCase(
	sourceRepo adapter.SourceRepository,
	categoryRepo adapter.CategoryRepository,
	writer adapter.AtomicWriter,
) *UpdateSourceUseCase {
	return &UpdateSourceUseCase{
		sourceRepo:   sourceRepo,
		categoryRepo: categoryRepo,
		writer:       writer,
	}
}

// Execute performs the source update. A source that already carries
// transactions cannot be moved to another category.
func (uc *UpdateSourceUseCase) Execute(ctx context.Context, input UpdateSourceInput) (*UpdateSourceOutput, error) {
	var updated *entity.Source

	err := uc.writer.Do(ctx, func(ctx context.Context) error {
		source, err := findSource(ctx, uc.sourceRepo, input.SourceID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			name, err := normalizeName(*input.Name)
			if err != nil {
				return err
			}
			source.Name = name
		}

		if input.CategoryID != nil && *input.CategoryID != source.CategoryID {
			if err := requireCategory(ctx, uc.categoryRepo, *input.CategoryID); err != nil {
				return err
			}

			count, err := uc.sourceRepo.CountTransactions(ctx, source.ID)
			if err != nil {
				return fmt.Errorf("failed to count source transactions: %w", err)
			}
			if count > 0 {
				return domainerror.NewSourceConflictError(
					domainerror.ErrCodeSourceCategoryLocked,
					fmt.Sprintf("source category cannot change while %d transactions reference it", count),
					count,
					domainerror.ErrSourceCategoryLocked,
				)
			}

			source.CategoryID = *input.CategoryID
		}

		if input.IsActive != nil {
			source.IsActive = *input.IsActive
		}

		source.UpdatedAt = time.Now().UTC()

		if err := uc.sourceRepo.Update(ctx, source); err != nil {
			return fmt.Errorf("failed to update source: %w", err)
		}

		updated = source
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Source updated", "sourceID", updated.ID)

	return &UpdateSourceOutput{
		Source: updated,
	}, nil
}
