package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// SourceModel represents the sources table in the database.
type SourceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the SourceModel.
func (SourceModel) TableName() string {
	return "sources"
}

// ToEntity converts a SourceModel to a domain Source entity.
func (m *SourceModel) ToEntity() *entity.Source {
	return &entity.Source{
		ID:         m.ID,
		Name:       m.Name,
		CategoryID: m.CategoryID,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

// SourceFromEntity creates a SourceModel from a domain Source entity.
func SourceFromEntity(source *entity.Source) *SourceModel {
	return &SourceModel{
		ID:         source.ID,
		Name:       source.Name,
		CategoryID: source.CategoryID,
		IsActive:   source.IsActive,
		CreatedAt:  source.CreatedAt.UTC(),
		UpdatedAt:  source.UpdatedAt.UTC(),
	}
}
