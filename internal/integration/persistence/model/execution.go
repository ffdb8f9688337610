// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// ExecutionModel represents the executions table in the database. Refund
// details are flattened into nullable columns; they are only populated for
// refund statuses.
type ExecutionModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CareTaskID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	ScheduledDate     time.Time        `gorm:"type:date;not null;index"`
	ExecutionDate     *time.Time       `gorm:"type:date"`
	Status            string           `gorm:"type:varchar(20);not null;default:'TODO';index"`
	QuantityPurchased int              `gorm:"not null;default:1"`
	QuantityUnit      string           `gorm:"type:varchar(30)"`
	ActualCost        *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Notes             string           `gorm:"type:text"`
	RefundAmount      *decimal.Decimal `gorm:"type:decimal(15,2)"`
	RefundDate        *time.Time       `gorm:"type:date"`
	RefundReason      string           `gorm:"type:text"`
	RefundEvidenceURL string           `gorm:"type:varchar(500)"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`

	CareTask *CareTaskModel `gorm:"foreignKey:CareTaskID;references:ID"`
}

// TableName returns the table name for the ExecutionModel.
func (ExecutionModel) TableName() string {
	return "executions"
}

// ToEntity converts an ExecutionModel to a domain Execution entity.
func (m *ExecutionModel) ToEntity() *entity.Execution {
	var refund *entity.Refund
	if m.RefundAmount != nil {
		refund = &entity.Refund{
			Amount:      *m.RefundAmount,
			Date:        m.RefundDate,
			Reason:      m.RefundReason,
			EvidenceURL: m.RefundEvidenceURL,
		}
	}

	return &entity.Execution{
		ID:                m.ID,
		CareTaskID:        m.CareTaskID,
		ScheduledDate:     m.ScheduledDate,
		ExecutionDate:     m.ExecutionDate,
		Status:            entity.ExecutionStatus(m.Status),
		QuantityPurchased: m.QuantityPurchased,
		QuantityUnit:      m.QuantityUnit,
		ActualCost:        m.ActualCost,
		Notes:             m.Notes,
		Refund:            refund,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ExecutionModelFromEntity creates an ExecutionModel from a domain entity.
func ExecutionModelFromEntity(execution *entity.Execution) *ExecutionModel {
	m := &ExecutionModel{
		ID:                execution.ID,
		CareTaskID:        execution.CareTaskID,
		ScheduledDate:     execution.ScheduledDate,
		ExecutionDate:     execution.ExecutionDate,
		Status:            string(execution.Status),
		QuantityPurchased: execution.QuantityPurchased,
		QuantityUnit:      execution.QuantityUnit,
		ActualCost:        execution.ActualCost,
		Notes:             execution.Notes,
		CreatedAt:         execution.CreatedAt,
		UpdatedAt:         execution.UpdatedAt,
	}
	if execution.Refund != nil {
		amount := execution.Refund.Amount
		m.RefundAmount = &amount
		m.RefundDate = execution.Refund.Date
		m.RefundReason = execution.Refund.Reason
		m.RefundEvidenceURL = execution.Refund.EvidenceURL
	}
	return m
}
