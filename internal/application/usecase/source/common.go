// Package source contains source-related use cases.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
)

// MaxSourceNameLength is the maximum allowed length for source names.
const MaxSourceNameLength = 100

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewSourceError(
			domainerror.ErrCodeSourceNameRequired,
			"source name is required",
			domainerror.ErrSourceNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxSourceNameLength {
		return "", domainerror.NewSourceError(
			domainerror.ErrCodeSourceNameTooLong,
			fmt.Sprintf("source name must not exceed %d characters", MaxSourceNameLength),
			domainerror.ErrSourceNameTooLong,
		)
	}
	return name, nil
}

func findSource(ctx context.Context, repo adapter.SourceRepository, id uuid.UUID) (*entity.Source, error) {
	source, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrSourceNotFound) {
			return nil, domainerror.NewSourceError(
				domainerror.ErrCodeSourceNotFound,
				"source not found",
				domainerror.ErrSourceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find source: %w", err)
	}
	return source, nil
}

// requireCategory checks that the category a source points at exists.
func requireCategory(ctx context.Context, repo adapter.CategoryRepository, id uuid.UUID) error {
	if _, err := repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewSourceError(
				domainerror.ErrCodeSourceCategoryNotFound,
				fmt.Sprintf("category %s does not exist", id),
				domainerror.ErrSourceCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	return nil
}
