package source

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

// ListSourcesInput represents the input for listing sources.
type ListSourcesInput struct {
	CategoryID *uuid.UUID // Optional, every source when nil
}

// ListSourcesOutput represents the output of listing sources.
type ListSourcesOutput struct {
	Sources []*entity.Source
}

// ListSourcesUseCase handles listing sources ordered by name, then id.
type ListSourcesUseCase struct {
	sourceRepo adapter.SourceRepository
}

// NewListSourcesUseCase creates a new ListSourcesUseCase instance.
func NewListSourcesUseCase(sourceRepo adapter.SourceRepository) *ListSourcesUseCase {
	return &ListSourcesUseCase{
		sourceRepo: sourceRepo,
	}
}

// Execute performs the source listing.
func (uc *ListSourcesUseCase) Execute(ctx context.Context, input ListSourcesInput) (*ListSourcesOutput, error) {
	var (
		sources []*entity.Source
		err     error
	)
	if input.CategoryID != nil {
		sources, err = uc.sourceRepo.FindByCategory(ctx, *input.CategoryID)
	} else {
		sources, err = uc.sourceRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	return &ListSourcesOutput{
		Sources: sources,
	}, nil
}
