package entity

import (
	"time"

	"github.com/google/uuid"
)

// Source represents a named origin or destination of money, scoped to one category.
type Source struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSource creates a new active Source entity.
func NewSource(name string, categoryID uuid.UUID) *Source {
	now := time.Now().UTC()

	return &Source{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       name,
		CategoryID: categoryID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
