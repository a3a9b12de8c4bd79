package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/print-shop/ledger/internal/application/usecase/source"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
)

// SourceController handles source endpoints.
type SourceController struct {
	listUseCase   *source.ListSourcesUseCase
	getUseCase    *source.GetSourceUseCase
	createUseCase *source.CreateSourceUseCase
	updateUseCase *source.UpdateSourceUseCase
	deleteUseCase *source.DeleteSourceUseCase
}

// NewSourceController creates a new source controller instance.
func NewSourceController(
	listUseCase *source.ListSourcesUseCase,
	getUseCase *source.GetSourceUseCase,
	createUseCase *source.CreateSourceUseCase,
	updateUseCase *source.UpdateSourceUseCase,
	deleteUseCase *source.DeleteSourceUseCase,
) *SourceController {
	return &SourceController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /sources requests.
func (c *SourceController) List(ctx *gin.Context) {
	var input source.ListSourcesInput
	if raw, ok := ctx.GetQuery("category_id"); ok {
		categoryID, err := parseUUID(raw)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeMissingSourceFields), "Invalid category ID format", err)
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSourceListResponse(output.Sources))
}

// Get handles GET /sources/:id requests.
func (c *SourceController) Get(ctx *gin.Context) {
	sourceID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidSourceID), "Invalid source ID format", err)
		return
	}

	src, err := c.getUseCase.Execute(ctx.Request.Context(), sourceID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSourceResponse(src))
}

// Create handles POST /sources requests.
func (c *SourceController) Create(ctx *gin.Context) {
	var req dto.CreateSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingSourceFields), "Invalid request body", err)
		return
	}

	categoryID, err := parseUUID(req.CategoryID)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingSourceFields), "Invalid category ID format", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), source.CreateSourceInput{
		Name:       req.Name,
		CategoryID: categoryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSourceResponse(output.Source))
}

// Update handles PATCH /sources/:id requests.
func (c *SourceController) Update(ctx *gin.Context) {
	sourceID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidSourceID), "Invalid source ID format", err)
		return
	}

	var req dto.UpdateSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingSourceFields), "Invalid request body", err)
		return
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingSourceFields), "Invalid category ID format", err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), source.UpdateSourceInput{
		SourceID:   sourceID,
		Name:       req.Name,
		CategoryID: categoryID,
		IsActive:   req.IsActive,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSourceResponse(output.Source))
}

// Delete handles DELETE /sources/:id requests.
func (c *SourceController) Delete(ctx *gin.Context) {
	sourceID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidSourceID), "Invalid source ID format", err)
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), source.DeleteSourceInput{SourceID: sourceID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
