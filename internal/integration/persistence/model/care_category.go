// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// CareCategoryModel represents the care_categories table in the database.
type CareCategoryModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(50);not null"`
	Color        string          `gorm:"type:varchar(7);not null"`
	AnnualBudget decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DisplayOrder int             `gorm:"not null;default:0"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	Subcategories []SubcategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Client        *ClientModel       `gorm:"foreignKey:ClientID;references:ID"`
}

// TableName returns the table name for the CareCategoryModel.
func (CareCategoryModel) TableName() string {
	return "care_categories"
}

// ToEntity converts a CareCategoryModel to a domain CareCategory entity.
func (m *CareCategoryModel) ToEntity() *entity.CareCategory {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	subcategories := make([]*entity.Subcategory, 0, len(m.Subcategories))
	for i := range m.Subcategories {
		subcategories = append(subcategories, m.Subcategories[i].ToEntity())
	}

	return &entity.CareCategory{
		ID:            m.ID,
		ClientID:      m.ClientID,
		Name:          m.Name,
		Color:         m.Color,
		AnnualBudget:  m.AnnualBudget,
		DisplayOrder:  m.DisplayOrder,
		Subcategories: subcategories,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// CareCategoryModelFromEntity creates a CareCategoryModel from a domain entity.
func CareCategoryModelFromEntity(category *entity.CareCategory) *CareCategoryModel {
	return &CareCategoryModel{
		ID:           category.ID,
		ClientID:     category.ClientID,
		Name:         category.Name,
		Color:        category.Color,
		AnnualBudget: category.AnnualBudget,
		DisplayOrder: category.DisplayOrder,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}

// SubcategoryModel represents the subcategories table in the database.
type SubcategoryModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(50);not null"`
	AnnualBudget decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DisplayOrder int             `gorm:"not null;default:0"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SubcategoryModel.
func (SubcategoryModel) TableName() string {
	return "subcategories"
}

// ToEntity converts a SubcategoryModel to a domain Subcategory entity.
func (m *SubcategoryModel) ToEntity() *entity.Subcategory {
	return &entity.Subcategory{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		AnnualBudget: m.AnnualBudget,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SubcategoryModelFromEntity creates a SubcategoryModel from a domain entity.
func SubcategoryModelFromEntity(subcategory *entity.Subcategory) *SubcategoryModel {
	return &SubcategoryModel{
		ID:           subcategory.ID,
		CategoryID:   subcategory.CategoryID,
		Name:         subcategory.Name,
		AnnualBudget: subcategory.AnnualBudget,
		DisplayOrder: subcategory.DisplayOrder,
		CreatedAt:    subcategory.CreatedAt,
		UpdatedAt:    subcategory.UpdatedAt,
	}
}
