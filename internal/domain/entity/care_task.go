// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskType represents the kind of care task.
type TaskType string

const (
	TaskTypeGeneral  TaskType = "GENERAL"
	TaskTypePurchase TaskType = "PURCHASE"
)

// CareTask represents a schedulable unit of care work, recurring or one-off.
// A task is exclusively owned by its client; executions are exclusively
// owned by the task.
type CareTask struct {
	ID                     uuid.UUID
	ClientID               uuid.UUID
	CategoryID             uuid.UUID
	SubcategoryID          *uuid.UUID
	Name                   string
	Description            string
	TaskType               TaskType
	RecurrenceIntervalDays int // 0 = one-off
	StartDate              time.Time
	EndDate                *time.Time // Required unless one-off; must be nil when one-off
	YearlyBudget           *decimal.Decimal
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              *time.Time // Soft-delete support
}

// NewCareTask creates a new CareTask entity.
func NewCareTask(
	clientID, categoryID uuid.UUID,
	subcategoryID *uuid.UUID,
	name, description string,
	taskType TaskType,
	recurrenceIntervalDays int,
	startDate time.Time,
	endDate *time.Time,
	yearlyBudget *decimal.Decimal,
) *CareTask {
	now := time.Now().UTC()
	return &CareTask{
		ID:                     uuid.New(),
		ClientID:               clientID,
		CategoryID:             categoryID,
		SubcategoryID:          subcategoryID,
		Name:                   name,
		Description:            description,
		TaskType:               taskType,
		RecurrenceIntervalDays: recurrenceIntervalDays,
		StartDate:              startDate,
		EndDate:                endDate,
		YearlyBudget:           yearlyBudget,
		IsActive:               true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// IsOneOff reports whether the task has no recurrence.
func (t *CareTask) IsOneOff() bool {
	return t.RecurrenceIntervalDays == 0
}
