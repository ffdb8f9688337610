// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/application/usecase/caretask"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// CreateCareTaskRequest represents the request body for care task creation.
// Dates cross the API boundary as YYYY-MM-DD strings.
type CreateCareTaskRequest struct {
	ClientID               string           `json:"client_id" binding:"required,uuid"`
	CategoryID             string           `json:"category_id" binding:"required,uuid"`
	SubcategoryID          *string          `json:"subcategory_id,omitempty" binding:"omitempty,uuid"`
	Name                   string           `json:"name" binding:"required,min=1,max=100"`
	Description            string           `json:"description,omitempty"`
	TaskType               string           `json:"task_type" binding:"required,oneof=PURCHASE GENERAL"`
	RecurrenceIntervalDays int              `json:"recurrence_interval_days"`
	StartDate              string           `json:"start_date" binding:"required"`
	EndDate                *string          `json:"end_date,omitempty"`
	YearlyBudget           *decimal.Decimal `json:"yearly_budget,omitempty"`
}

// UpdateCareTaskRequest represents the request body for care task update.
type UpdateCareTaskRequest struct {
	Name                   *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description            *string          `json:"description,omitempty"`
	RecurrenceIntervalDays *int             `json:"recurrence_interval_days,omitempty"`
	StartDate              *string          `json:"start_date,omitempty"`
	EndDate                *string          `json:"end_date,omitempty"`
	ClearEndDate           bool             `json:"clear_end_date,omitempty"`
	YearlyBudget           *decimal.Decimal `json:"yearly_budget,omitempty"`
	SubcategoryID          *string          `json:"subcategory_id,omitempty" binding:"omitempty,uuid"`
}

// SetCareTaskActiveRequest represents the request body for activating or
// deactivating a care task.
type SetCareTaskActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// CareTaskResponse represents a care task in API responses.
type CareTaskResponse struct {
	ID                     string           `json:"id"`
	ClientID               string           `json:"client_id"`
	CategoryID             string           `json:"category_id"`
	SubcategoryID          *string          `json:"subcategory_id,omitempty"`
	Name                   string           `json:"name"`
	Description            string           `json:"description"`
	TaskType               string           `json:"task_type"`
	RecurrenceIntervalDays int              `json:"recurrence_interval_days"`
	Recurrence             string           `json:"recurrence"`
	StartDate              string           `json:"start_date"`
	EndDate                *string          `json:"end_date,omitempty"`
	YearlyBudget           *decimal.Decimal `json:"yearly_budget,omitempty"`
	IsActive               bool             `json:"is_active"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// CareTaskListResponse represents the response for listing care tasks.
type CareTaskListResponse struct {
	Tasks []CareTaskResponse `json:"tasks"`
}

// GenerateExecutionsResponse represents the response for execution generation.
type GenerateExecutionsResponse struct {
	Created []ExecutionResponse `json:"created"`
	Skipped int                 `json:"skipped"`
}

// ToCareTaskResponse converts a domain CareTask entity to a CareTaskResponse DTO.
func ToCareTaskResponse(task *entity.CareTask, recurrence string) CareTaskResponse {
	var subcategoryID *string
	if task.SubcategoryID != nil {
		s := task.SubcategoryID.String()
		subcategoryID = &s
	}
	return CareTaskResponse{
		ID:                     task.ID.String(),
		ClientID:               task.ClientID.String(),
		CategoryID:             task.CategoryID.String(),
		SubcategoryID:          subcategoryID,
		Name:                   task.Name,
		Description:            task.Description,
		TaskType:               string(task.TaskType),
		RecurrenceIntervalDays: task.RecurrenceIntervalDays,
		Recurrence:             recurrence,
		StartDate:              task.StartDate.Format(DateFormat),
		EndDate:                formatDatePtr(task.EndDate),
		YearlyBudget:           task.YearlyBudget,
		IsActive:               task.IsActive,
		CreatedAt:              task.CreatedAt,
		UpdatedAt:              task.UpdatedAt,
	}
}

// ToCareTaskListResponse converts care task listings to a CareTaskListResponse.
func ToCareTaskListResponse(listings []caretask.CareTaskListing) CareTaskListResponse {
	tasks := make([]CareTaskResponse, len(listings))
	for i, listing := range listings {
		tasks[i] = ToCareTaskResponse(listing.Task, listing.Recurrence)
	}
	return CareTaskListResponse{
		Tasks: tasks,
	}
}
