package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
)

// DeleteSourceInput represents the input for source deletion.
type DeleteSourceInput struct {
	SourceID uuid.UUID
}

// DeleteSourceOutput represents the output of source deletion.
type DeleteSourceOutput struct {
	Success bool
}

// DeleteSourceUseCase handles source deletion logic.
type DeleteSourceUseCase struct {
	sourceRepo adapter.SourceRepository
	writer     adapter.AtomicWriter
}

// NewDeleteSourceUseCase creates a new DeleteSourceUseCase instance.
func NewDeleteSourceUseCase(sourceRepo adapter.SourceRepository, writer adapter.AtomicWriter) *DeleteSourceUseCase {
	return &DeleteSourceUseCase{
		sourceRepo: sourceRepo,
		writer:     writer,
	}
}

// Execute performs the source deletion.
func (uc *DeleteSourceUseCase) Execute(ctx context.Context, input DeleteSourceInput) (*DeleteSourceOutput, error) {
	err := uc.writer.Do(ctx, func(ctx context.Context) error {
		if _, err := findSource(ctx, uc.sourceRepo, input.SourceID); err != nil {
			return err
		}

		count, err := uc.sourceRepo.CountTransactions(ctx, input.SourceID)
		if err != nil {
			return fmt.Errorf("failed to count source transactions: %w", err)
		}
		if count > 0 {
			return domainerror.NewSourceConflictError(
				domainerror.ErrCodeSourceInUse,
				fmt.Sprintf("source is referenced by %d transactions", count),
				count,
				domainerror.ErrSourceInUse,
			)
		}

		if err := uc.sourceRepo.Delete(ctx, input.SourceID); err != nil {
			return fmt.Errorf("failed to delete source: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Source deleted", "sourceID", input.SourceID)

	return &DeleteSourceOutput{
		Success: true,
	}, nil
}
