// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/print-shop/ledger/internal/application/usecase/category"
	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	getUseCase    *category.GetCategoryUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	getUseCase *category.GetCategoryUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	var input category.ListCategoriesInput

	// Filter by category type if provided
	if raw := ctx.Query("type"); raw != "" {
		categoryType := entity.CategoryType(raw)
		input.Type = &categoryType
	}

	if raw := ctx.Query("active"); raw != "" {
		activeOnly, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeMissingCategoryFields), "active must be true or false", err)
			return
		}
		input.ActiveOnly = activeOnly
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Get handles GET /categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	categoryID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidCategoryID), "Invalid category ID format", err)
		return
	}

	cat, err := c.getUseCase.Execute(ctx.Request.Context(), categoryID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingCategoryFields), "Invalid request body", err)
		return
	}

	parentID, err := parseOptionalUUID(req.ParentCategoryID)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidCategoryID), "Invalid parent category ID format", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:             req.Name,
		Type:             entity.CategoryType(req.Type),
		ParentCategoryID: parentID,
		RequiresEmployee: req.RequiresEmployee,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidCategoryID), "Invalid category ID format", err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingCategoryFields), "Invalid request body", err)
		return
	}

	parentID, err := parseOptionalUUID(req.ParentCategoryID)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidCategoryID), "Invalid parent category ID format", err)
		return
	}

	input := category.UpdateCategoryInput{
		CategoryID:       categoryID,
		Name:             req.Name,
		ParentCategoryID: parentID,
		ClearParent:      req.ClearParent,
		IsActive:         req.IsActive,
		RequiresEmployee: req.RequiresEmployee,
	}
	if req.Type != nil {
		categoryType := entity.CategoryType(*req.Type)
		input.Type = &categoryType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidCategoryID), "Invalid category ID format", err)
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{CategoryID: categoryID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
