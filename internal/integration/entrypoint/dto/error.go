// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	domainerror "github.com/print-shop/ledger/internal/domain/error"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error            string `json:"error"`
	Code             string `json:"code,omitempty"`
	Kind             string `json:"kind,omitempty"`
	ReferencingCount int64  `json:"referencing_count,omitempty"`
	Details          string `json:"details,omitempty"`
}

// ToErrorResponse converts a classified domain error to an ErrorResponse DTO.
func ToErrorResponse(err domainerror.Classified) ErrorResponse {
	return ErrorResponse{
		Error:            err.ErrorMessage(),
		Code:             err.ErrorCode(),
		Kind:             string(err.ErrorKind()),
		ReferencingCount: err.References(),
	}
}
