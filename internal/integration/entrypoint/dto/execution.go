// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// CreateExecutionRequest represents the request body for execution creation.
// Dates cross the API boundary as YYYY-MM-DD strings.
type CreateExecutionRequest struct {
	TaskID        string `json:"task_id" binding:"required,uuid"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	Notes         string `json:"notes,omitempty"`
}

// MarkDoneRequest represents the request body for completing an execution.
type MarkDoneRequest struct {
	ExecutionDate     *string          `json:"execution_date,omitempty"`
	ActualCost        *decimal.Decimal `json:"actual_cost,omitempty"`
	QuantityPurchased *int             `json:"quantity_purchased,omitempty"`
	QuantityUnit      *string          `json:"quantity_unit,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

// CancelExecutionRequest represents the request body for cancelling an execution.
type CancelExecutionRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// RefundExecutionRequest represents the request body for refunding an execution.
type RefundExecutionRequest struct {
	Status      string           `json:"status" binding:"required,oneof=REFUNDED PARTIALLY_REFUNDED"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Date        *string          `json:"date,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	EvidenceURL string           `json:"evidence_url,omitempty"`
}

// UpdateExecutionRequest represents the request body for execution update.
type UpdateExecutionRequest struct {
	ScheduledDate *string          `json:"scheduled_date,omitempty"`
	ActualCost    *decimal.Decimal `json:"actual_cost,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	RefundAmount  *decimal.Decimal `json:"refund_amount,omitempty"`
}

// RefundResponse represents refund details in API responses.
type RefundResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        *string         `json:"date,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	EvidenceURL string          `json:"evidence_url,omitempty"`
}

// ExecutionResponse represents an execution in API responses.
type ExecutionResponse struct {
	ID                string           `json:"id"`
	CareTaskID        string           `json:"care_task_id"`
	ScheduledDate     string           `json:"scheduled_date"`
	ExecutionDate     *string          `json:"execution_date,omitempty"`
	Status            string           `json:"status"`
	QuantityPurchased int              `json:"quantity_purchased"`
	QuantityUnit      string           `json:"quantity_unit,omitempty"`
	ActualCost        *decimal.Decimal `json:"actual_cost,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	Refund            *RefundResponse  `json:"refund,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// FieldVisibilityResponse describes how one field behaves for the execution's
// current status.
type FieldVisibilityResponse struct {
	Visible  bool `json:"visible"`
	Editable bool `json:"editable"`
}

// FieldConfigResponse maps execution field names to their visibility.
type FieldConfigResponse map[string]FieldVisibilityResponse

// ExecutionDetailResponse represents an execution plus its field configuration.
type ExecutionDetailResponse struct {
	Execution   ExecutionResponse   `json:"execution"`
	FieldConfig FieldConfigResponse `json:"field_config"`
}

// ExecutionListResponse represents the response for listing executions.
type ExecutionListResponse struct {
	Executions []ExecutionResponse `json:"executions"`
}

// ToExecutionResponse converts a domain Execution entity to an ExecutionResponse DTO.
func ToExecutionResponse(execution *entity.Execution) ExecutionResponse {
	var refund *RefundResponse
	if execution.Refund != nil {
		refund = &RefundResponse{
			Amount:      execution.Refund.Amount,
			Date:        formatDatePtr(execution.Refund.Date),
			Reason:      execution.Refund.Reason,
			EvidenceURL: execution.Refund.EvidenceURL,
		}
	}
	return ExecutionResponse{
		ID:                execution.ID.String(),
		CareTaskID:        execution.CareTaskID.String(),
		ScheduledDate:     execution.ScheduledDate.Format(DateFormat),
		ExecutionDate:     formatDatePtr(execution.ExecutionDate),
		Status:            string(execution.Status),
		QuantityPurchased: execution.QuantityPurchased,
		QuantityUnit:      execution.QuantityUnit,
		ActualCost:        execution.ActualCost,
		Notes:             execution.Notes,
		Refund:            refund,
		CreatedAt:         execution.CreatedAt,
		UpdatedAt:         execution.UpdatedAt,
	}
}

// ToFieldConfigResponse converts a FieldConfig value object to its DTO.
func ToFieldConfigResponse(config valueobject.FieldConfig) FieldConfigResponse {
	response := make(FieldConfigResponse, len(config))
	for field, visibility := range config {
		response[field] = FieldVisibilityResponse{
			Visible:  visibility.Visible,
			Editable: visibility.Editable,
		}
	}
	return response
}

// ToExecutionListResponse converts a list of executions to an ExecutionListResponse.
func ToExecutionListResponse(executions []*entity.Execution) ExecutionListResponse {
	responses := make([]ExecutionResponse, len(executions))
	for i, execution := range executions {
		responses[i] = ToExecutionResponse(execution)
	}
	return ExecutionListResponse{
		Executions: responses,
	}
}
