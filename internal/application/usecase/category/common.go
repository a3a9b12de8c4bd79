// Package category contains category-related use cases.
package category

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

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 100

// normalizeName trims the name and checks its length.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

func validateType(categoryType entity.CategoryType) error {
	if !categoryType.IsValid() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}
	return nil
}

func validateEmployeeFlag(categoryType entity.CategoryType, requiresEmployee bool) error {
	if requiresEmployee && categoryType != entity.CategoryTypeExpense {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeEmployeeFlagOnIncome,
			"only expense categories can require an employee",
			domainerror.ErrEmployeeFlagOnIncome,
		)
	}
	return nil
}

// findCategory loads a category and maps a missing row to a not found error.
func findCategory(ctx context.Context, repo adapter.CategoryRepository, id uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// validateParent checks that parentID names an existing category of
// categoryType and that attaching self under it keeps the tree acyclic.
// self is nil for categories that do not exist yet.
func validateParent(
	ctx context.Context,
	repo adapter.CategoryRepository,
	self *uuid.UUID,
	parentID uuid.UUID,
	categoryType entity.CategoryType,
) error {
	if self != nil && *self == parentID {
		return cycleError()
	}

	parent, err := repo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeParentCategoryNotFound,
				"parent category does not exist",
				domainerror.ErrParentCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find parent category: %w", err)
	}

	if parent.Type != categoryType {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeParentCategoryMismatch,
			fmt.Sprintf("parent category is of type %s, expected %s", parent.Type, categoryType),
			domainerror.ErrParentCategoryTypeMismatch,
		)
	}

	if self == nil {
		return nil
	}

	// Walk up from the parent; reaching self means self would be its own ancestor.
	visited := map[uuid.UUID]bool{parent.ID: true}
	for current := parent; current.ParentCategoryID != nil; {
		ancestorID := *current.ParentCategoryID
		if ancestorID == *self || visited[ancestorID] {
			return cycleError()
		}
		visited[ancestorID] = true

		current, err = repo.FindByID(ctx, ancestorID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil
			}
			return fmt.Errorf("failed to find ancestor category: %w", err)
		}
	}
	return nil
}

func cycleError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryCycle,
		"a category cannot be its own ancestor",
		domainerror.ErrCategoryCycle,
	)
}
