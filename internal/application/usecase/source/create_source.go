package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

// CreateSourceInput represents the input for source creation.
type CreateSourceInput struct {
	Name       string
	CategoryID uuid.UUID
}

// CreateSourceOutput represents the output of source creation.
type CreateSourceOutput struct {
	Source *entity.Source
}

// CreateSourceUseCase handles source creation logic.
type CreateSourceUseCase struct {
	sourceRepo   adapter.SourceRepository
	categoryRepo adapter.CategoryRepository
	writer       adapter.AtomicWriter
}

// NewCreateSourceUseCase creates a new CreateSourceUseCase instance.
func NewCreateSourceUseCase(
	sourceRepo adapter.SourceRepository,
	categoryRepo adapter.CategoryRepository,
	writer adapter.AtomicWriter,
) *CreateSourceUseCase {
	return &CreateSourceUseCase{
		sourceRepo:   sourceRepo,
		categoryRepo: categoryRepo,
		writer:       writer,
	}
}

// Execute performs the source creation.
func (uc *CreateSourceUseCase) Execute(ctx context.Context, input CreateSourceInput) (*CreateSourceOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	source := entity.NewSource(name, input.CategoryID)

	err = uc.writer.Do(ctx, func(ctx context.Context) error {
		if err := requireCategory(ctx, uc.categoryRepo, input.CategoryID); err != nil {
			return err
		}
		if err := uc.sourceRepo.Create(ctx, source); err != nil {
			return fmt.Errorf("failed to create source: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Source created", "sourceID", source.ID, "categoryID", source.CategoryID)

	return &CreateSourceOutput{
		Source: source,
	}, nil
}
