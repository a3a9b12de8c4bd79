// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name             string     `gorm:"type:varchar(100);not null;index"`
	Type             string     `gorm:"type:varchar(10);not null;index"`
	ParentCategoryID *uuid.UUID `gorm:"type:uuid;index"`
	IsActive         bool       `gorm:"not null;default:true"`
	RequiresEmployee bool       `gorm:"not null;default:false"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:               m.ID,
		Name:             m.Name,
		Type:             entity.CategoryType(m.Type),
		ParentCategoryID: m.ParentCategoryID,
		IsActive:         m.IsActive,
		RequiresEmployee: m.RequiresEmployee,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:               category.ID,
		Name:             category.Name,
		Type:             string(category.Type),
		ParentCategoryID: category.ParentCategoryID,
		IsActive:         category.IsActive,
		RequiresEmployee: category.RequiresEmployee,
		CreatedAt:        category.CreatedAt.UTC(),
		UpdatedAt:        category.UpdatedAt.UTC(),
	}
}
