// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCategoryColor is the default color for care categories.
const DefaultCategoryColor = "#6366F1"

// CareCategory represents an annual budget allocation bucket for a client.
// Categories own their subcategories; care tasks reference a category but
// are never owned by it.
type CareCategory struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	Name          string
	Color         string
	AnnualBudget  decimal.Decimal
	DisplayOrder  int
	Subcategories []*Subcategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// Subcategory represents a nested budget bucket belonging to exactly one category.
type Subcategory struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Name         string
	AnnualBudget decimal.Decimal
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCareCategory creates a new CareCategory entity.
// Note: Defaulting logic for color should be applied in the Application layer
// (UseCase) before calling this constructor.
func NewCareCategory(clientID uuid.UUID, name, color string, annualBudget decimal.Decimal, displayOrder int) *CareCategory {
	now := time.Now().UTC()
	return &CareCategory{
		ID:           uuid.New(),
		ClientID:     clientID,
		Name:         name,
		Color:        color,
		AnnualBudget: annualBudget,
		DisplayOrder: displayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewSubcategory creates a new Subcategory entity under the given category.
func NewSubcategory(categoryID uuid.UUID, name string, annualBudget decimal.Decimal, displayOrder int) *Subcategory {
	now := time.Now().UTC()
	return &Subcategory{
		ID:           uuid.New(),
		CategoryID:   categoryID,
		Name:         name,
		AnnualBudget: annualBudget,
		DisplayOrder: displayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
