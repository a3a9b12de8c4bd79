package dto

import (
	"time"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name             string  `json:"name" binding:"required"`
	Type             string  `json:"type" binding:"required"`
	ParentCategoryID *string `json:"parent_category_id,omitempty"`
	RequiresEmployee bool    `json:"requires_employee,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name             *string `json:"name,omitempty"`
	Type             *string `json:"type,omitempty"`
	ParentCategoryID *string `json:"parent_category_id,omitempty"`
	ClearParent      bool    `json:"clear_parent,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
	RequiresEmployee *bool   `json:"requires_employee,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	ParentCategoryID *string   `json:"parent_category_id"`
	IsActive         bool      `json:"is_active"`
	RequiresEmployee bool      `json:"requires_employee"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	var parentID *string
	if cat.ParentCategoryID != nil {
		id := cat.ParentCategoryID.String()
		parentID = &id
	}

	return CategoryResponse{
		ID:               cat.ID.String(),
		Name:             cat.Name,
		Type:             string(cat.Type),
		ParentCategoryID: parentID,
		IsActive:         cat.IsActive,
		RequiresEmployee: cat.RequiresEmployee,
		CreatedAt:        cat.CreatedAt,
		UpdatedAt:        cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	response := CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, cat := range categories {
		response.Categories = append(response.Categories, ToCategoryResponse(cat))
	}
	return response
}
