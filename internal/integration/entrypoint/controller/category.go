// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/usecase/category"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/dto"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles care category and subcategory endpoints.
type CategoryController struct {
	createUseCase            *category.CreateCategoryUseCase
	listUseCase              *category.ListCategoriesUseCase
	updateUseCase            *category.UpdateCategoryUseCase
	deleteUseCase            *category.DeleteCategoryUseCase
	createSubcategoryUseCase *category.CreateSubcategoryUseCase
	updateSubcategoryUseCase *category.UpdateSubcategoryUseCase
	deleteSubcategoryUseCase *category.DeleteSubcategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	createSubcategoryUseCase *category.CreateSubcategoryUseCase,
	updateSubcategoryUseCase *category.UpdateSubcategoryUseCase,
	deleteSubcategoryUseCase *category.DeleteSubcategoryUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase:            createUseCase,
		listUseCase:              listUseCase,
		updateUseCase:            updateUseCase,
		deleteUseCase:            deleteUseCase,
		createSubcategoryUseCase: createSubcategoryUseCase,
		updateSubcategoryUseCase: updateSubcategoryUseCase,
		deleteSubcategoryUseCase: deleteSubcategoryUseCase,
	}
}

// Create handles POST /clients/:id/categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	input := category.CreateCategoryInput{
		UserID:       userID,
		ClientID:     clientID,
		Name:         req.Name,
		Color:        req.Color,
		AnnualBudget: req.AnnualBudget,
		DisplayOrder: req.DisplayOrder,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// List handles GET /clients/:id/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		UserID:   userID,
		ClientID: clientID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateCategoryInput{
		UserID:       userID,
		CategoryID:   categoryID,
		Name:         req.Name,
		Color:        req.Color,
		AnnualBudget: req.AnnualBudget,
		DisplayOrder: req.DisplayOrder,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateSubcategory handles POST /categories/:id/subcategories requests.
func (c *CategoryController) CreateSubcategory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.CreateSubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	input := category.CreateSubcategoryInput{
		UserID:       userID,
		CategoryID:   categoryID,
		Name:         req.Name,
		AnnualBudget: req.AnnualBudget,
		DisplayOrder: req.DisplayOrder,
	}

	output, err := c.createSubcategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubcategoryResponse(output.Subcategory))
}

// UpdateSubcategory handles PATCH /categories/:id/subcategories/:subId requests.
func (c *CategoryController) UpdateSubcategory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, subcategoryID, ok := parseSubcategoryPath(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateSubcategoryInput{
		UserID:        userID,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Name:          req.Name,
		AnnualBudget:  req.AnnualBudget,
		DisplayOrder:  req.DisplayOrder,
	}

	output, err := c.updateSubcategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubcategoryResponse(output.Subcategory))
}

// DeleteSubcategory handles DELETE /categories/:id/subcategories/:subId requests.
func (c *CategoryController) DeleteSubcategory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, subcategoryID, ok := parseSubcategoryPath(ctx)
	if !ok {
		return
	}

	_, err := c.deleteSubcategoryUseCase.Execute(ctx.Request.Context(), category.DeleteSubcategoryInput{
		UserID:        userID,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseSubcategoryPath parses the category and subcategory IDs from the URL.
func parseSubcategoryPath(ctx *gin.Context) (categoryID, subcategoryID uuid.UUID, ok bool) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	subcategoryID, err = uuid.Parse(ctx.Param("subId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subcategory ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return categoryID, subcategoryID, true
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := c.getStatusCodeForCategoryError(catErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		statusCode := http.StatusInternalServerError
		switch clientErr.Code {
		case domainerror.ErrCodeClientNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedClient:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeSubcategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCategory:
		return http.StatusForbidden
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidColorFormat,
		domainerror.ErrCodeNegativeBudget,
		domainerror.ErrCodeMissingCategoryFields,
		domainerror.ErrCodeSubcategoryWrongParent:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
