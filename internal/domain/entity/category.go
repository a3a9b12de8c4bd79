// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// IsValid reports whether the category type is one of the known types.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// Category represents a node of the financial category taxonomy.
type Category struct {
	ID               uuid.UUID
	Name             string
	Type             CategoryType
	ParentCategoryID *uuid.UUID // Optional, parent must share Type
	IsActive         bool
	RequiresEmployee bool // Transactions in this category must name an employee
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCategory creates a new active Category entity.
func NewCategory(name string, categoryType CategoryType, parentID *uuid.UUID, requiresEmployee bool) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:               uuid.Must(uuid.NewV7()),
		Name:             name,
		Type:             categoryType,
		ParentCategoryID: parentID,
		IsActive:         true,
		RequiresEmployee: requiresEmployee,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// CategoryReferences counts the entities that point at a category.
// A category with any reference keeps its type and cannot be deleted.
type CategoryReferences struct {
	Sources      int64
	Transactions int64
	Children     int64
}

// Total returns the number of referencing entities.
func (r CategoryReferences) Total() int64 {
	return r.Sources + r.Transactions + r.Children
}
