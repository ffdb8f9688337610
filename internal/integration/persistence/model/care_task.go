// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// CareTaskModel represents the care_tasks table in the database.
type CareTaskModel struct {
	ID                     uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ClientID               uuid.UUID        `gorm:"type:uuid;not null;index"`
	CategoryID             uuid.UUID        `gorm:"type:uuid;not null;index"`
	SubcategoryID          *uuid.UUID       `gorm:"type:uuid;index"`
	Name                   string           `gorm:"type:varchar(100);not null"`
	Description            string           `gorm:"type:text"`
	TaskType               string           `gorm:"type:varchar(10);not null;index"`
	RecurrenceIntervalDays int              `gorm:"not null;default:0"`
	StartDate              time.Time        `gorm:"type:date;not null;index"`
	EndDate                *time.Time       `gorm:"type:date"`
	YearlyBudget           *decimal.Decimal `gorm:"type:decimal(15,2)"`
	IsActive               bool             `gorm:"default:true;index"`
	CreatedAt              time.Time        `gorm:"not null"`
	UpdatedAt              time.Time        `gorm:"not null"`
	DeletedAt              gorm.DeletedAt   `gorm:"index"` // Soft-delete support

	Client      *ClientModel       `gorm:"foreignKey:ClientID;references:ID"`
	Category    *CareCategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Subcategory *SubcategoryModel  `gorm:"foreignKey:SubcategoryID;references:ID"`
}

// TableName returns the table name for the CareTaskModel.
func (CareTaskModel) TableName() string {
	return "care_tasks"
}

// ToEntity converts a CareTaskModel to a domain CareTask entity.
func (m *CareTaskModel) ToEntity() *entity.CareTask {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.CareTask{
		ID:                     m.ID,
		ClientID:               m.ClientID,
		CategoryID:             m.CategoryID,
		SubcategoryID:          m.SubcategoryID,
		Name:                   m.Name,
		Description:            m.Description,
		TaskType:               entity.TaskType(m.TaskType),
		RecurrenceIntervalDays: m.RecurrenceIntervalDays,
		StartDate:              m.StartDate,
		EndDate:                m.EndDate,
		YearlyBudget:           m.YearlyBudget,
		IsActive:               m.IsActive,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
		DeletedAt:              deletedAt,
	}
}

// CareTaskModelFromEntity creates a CareTaskModel from a domain entity.
func CareTaskModelFromEntity(task *entity.CareTask) *CareTaskModel {
	return &CareTaskModel{
		ID:                     task.ID,
		ClientID:               task.ClientID,
		CategoryID:             task.CategoryID,
		SubcategoryID:          task.SubcategoryID,
		Name:                   task.Name,
		Description:            task.Description,
		TaskType:               string(task.TaskType),
		RecurrenceIntervalDays: task.RecurrenceIntervalDays,
		StartDate:              task.StartDate,
		EndDate:                task.EndDate,
		YearlyBudget:           task.YearlyBudget,
		IsActive:               task.IsActive,
		CreatedAt:              task.CreatedAt,
		UpdatedAt:              task.UpdatedAt,
	}
}
