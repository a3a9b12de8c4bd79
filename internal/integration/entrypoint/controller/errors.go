package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
)

// statusForKind maps a domain error kind to its HTTP status code.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindReferentialIntegrity:
		return http.StatusUnprocessableEntity
	case domainerror.KindConflict:
		return http.StatusConflict
	case domainerror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the response for an error returned by a use case.
func handleError(ctx *gin.Context, err error) {
	var classified domainerror.Classified
	if errors.As(err, &classified) {
		if status := statusForKind(classified.ErrorKind()); status != http.StatusInternalServerError {
			ctx.JSON(status, dto.ToErrorResponse(classified))
			return
		}
	}

	slog.ErrorContext(ctx.Request.Context(), "request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// badRequest writes a validation error that was detected before reaching a use case.
func badRequest(ctx *gin.Context, code, message string, err error) {
	response := dto.ErrorResponse{
		Error: message,
		Code:  code,
		Kind:  string(domainerror.KindValidation),
	}
	if err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, response)
}

// parseUUID parses an identifier taken from the path or the body.
func parseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// parseOptionalUUID parses an optional identifier.
func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
