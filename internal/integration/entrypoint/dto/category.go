// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=50"`
	Color        string          `json:"color,omitempty"`
	AnnualBudget decimal.Decimal `json:"annual_budget"`
	DisplayOrder int             `json:"display_order"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color        *string          `json:"color,omitempty"`
	AnnualBudget *decimal.Decimal `json:"annual_budget,omitempty"`
	DisplayOrder *int             `json:"display_order,omitempty"`
}

// CreateSubcategoryRequest represents the request body for subcategory creation.
type CreateSubcategoryRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=50"`
	AnnualBudget decimal.Decimal `json:"annual_budget"`
	DisplayOrder int             `json:"display_order"`
}

// UpdateSubcategoryRequest represents the request body for subcategory update.
type UpdateSubcategoryRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	AnnualBudget *decimal.Decimal `json:"annual_budget,omitempty"`
	DisplayOrder *int             `json:"display_order,omitempty"`
}

// SubcategoryResponse represents a subcategory in API responses.
type SubcategoryResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	Name         string          `json:"name"`
	AnnualBudget decimal.Decimal `json:"annual_budget"`
	DisplayOrder int             `json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CategoryResponse represents a care category in API responses.
type CategoryResponse struct {
	ID            string                `json:"id"`
	ClientID      string                `json:"client_id"`
	Name          string                `json:"name"`
	Color         string                `json:"color"`
	AnnualBudget  decimal.Decimal       `json:"annual_budget"`
	DisplayOrder  int                   `json:"display_order"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToSubcategoryResponse converts a domain Subcategory entity to a SubcategoryResponse DTO.
func ToSubcategoryResponse(subcategory *entity.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:           subcategory.ID.String(),
		CategoryID:   subcategory.CategoryID.String(),
		Name:         subcategory.Name,
		AnnualBudget: subcategory.AnnualBudget,
		DisplayOrder: subcategory.DisplayOrder,
		CreatedAt:    subcategory.CreatedAt,
		UpdatedAt:    subcategory.UpdatedAt,
	}
}

// ToCategoryResponse converts a domain CareCategory entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.CareCategory) CategoryResponse {
	subcategories := make([]SubcategoryResponse, len(category.Subcategories))
	for i, subcategory := range category.Subcategories {
		subcategories[i] = ToSubcategoryResponse(subcategory)
	}
	return CategoryResponse{
		ID:            category.ID.String(),
		ClientID:      category.ClientID.String(),
		Name:          category.Name,
		Color:         category.Color,
		AnnualBudget:  category.AnnualBudget,
		DisplayOrder:  category.DisplayOrder,
		Subcategories: subcategories,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.CareCategory) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
