package source

import (
	"context"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

// GetSourceUseCase retrieves a single source.
type GetSourceUseCase struct {
	sourceRepo adapter.SourceRepository
}

// NewGetSourceUseCase creates a new GetSourceUseCase instance.
func NewGetSourceUseCase(sourceRepo adapter.SourceRepository) *GetSourceUseCase {
	return &GetSourceUseCase{sourceRepo: sourceRepo}
}

// Execute returns the source or a not found error.
func (uc *GetSourceUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Source, error) {
	return findSource(ctx, uc.sourceRepo, id)
}
