package dto

import (
	"time"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// CreateSourceRequest represents the request body for source creation.
type CreateSourceRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"category_id" binding:"required"`
}

// UpdateSourceRequest represents the request body for source update.
type UpdateSourceRequest struct {
	Name       *string `json:"name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// SourceResponse represents a single source in API responses.
type SourceResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SourceListResponse represents the response for listing sources.
type SourceListResponse struct {
	Sources []SourceResponse `json:"sources"`
}

// ToSourceResponse converts a domain Source entity to a SourceResponse DTO.
func ToSourceResponse(src *entity.Source) SourceResponse {
	return SourceResponse{
		ID:         src.ID.String(),
		Name:       src.Name,
		CategoryID: src.CategoryID.String(),
		IsActive:   src.IsActive,
		CreatedAt:  src.CreatedAt,
		UpdatedAt:  src.UpdatedAt,
	}
}

// ToSourceListResponse converts a list of sources to SourceListResponse.
func ToSourceListResponse(sources []*entity.Source) SourceListResponse {
	response := SourceListResponse{
		Sources: make([]SourceResponse, 0, len(sources)),
	}
	for _, src := range sources {
		response.Sources = append(response.Sources, ToSourceResponse(src))
	}
	return response
}
