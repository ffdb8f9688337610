// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExecutionStatus represents the lifecycle state of an execution.
type ExecutionStatus string

const (
	ExecutionStatusTodo              ExecutionStatus = "TODO"
	ExecutionStatusDone              ExecutionStatus = "DONE"
	ExecutionStatusCancelled         ExecutionStatus = "CANCELLED"
	ExecutionStatusRefunded          ExecutionStatus = "REFUNDED"
	ExecutionStatusPartiallyRefunded ExecutionStatus = "PARTIALLY_REFUNDED"
)

// Refund holds refund details attached to a refunded execution.
type Refund struct {
	Amount      decimal.Decimal
	Date        *time.Time
	Reason      string
	EvidenceURL string
}

// Execution represents one concrete occurrence of a care task, with its own
// cost and status. Executions are exclusively owned by their care task.
type Execution struct {
	ID                uuid.UUID
	CareTaskID        uuid.UUID
	ScheduledDate     time.Time
	ExecutionDate     *time.Time // Set only when status is DONE
	Status            ExecutionStatus
	QuantityPurchased int
	QuantityUnit      string
	ActualCost        *decimal.Decimal
	Notes             string
	Refund            *Refund // Present only for refund statuses
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewExecution creates a new Execution in the TODO state.
func NewExecution(careTaskID uuid.UUID, scheduledDate time.Time) *Execution {
	now := time.Now().UTC()
	return &Execution{
		ID:                uuid.New(),
		CareTaskID:        careTaskID,
		ScheduledDate:     scheduledDate,
		Status:            ExecutionStatusTodo,
		QuantityPurchased: 1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// executionTransitions is the fixed lifecycle table:
// TODO -> DONE | CANCELLED; DONE -> REFUNDED | PARTIALLY_REFUNDED.
// CANCELLED, REFUNDED and PARTIALLY_REFUNDED are terminal.
var executionTransitions = map[ExecutionStatus][]ExecutionStatus{
	ExecutionStatusTodo:              {ExecutionStatusDone, ExecutionStatusCancelled},
	ExecutionStatusDone:              {ExecutionStatusRefunded, ExecutionStatusPartiallyRefunded},
	ExecutionStatusCancelled:         {},
	ExecutionStatusRefunded:          {},
	ExecutionStatusPartiallyRefunded: {},
}

// CanTransitionTo reports whether the execution may move to the target status.
func (e *Execution) CanTransitionTo(target ExecutionStatus) bool {
	for _, allowed := range executionTransitions[e.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the execution status permits no further transitions.
func (e *Execution) IsTerminal() bool {
	return len(executionTransitions[e.Status]) == 0
}

// IsValidExecutionStatus reports whether the given status is a known lifecycle state.
func IsValidExecutionStatus(status ExecutionStatus) bool {
	_, ok := executionTransitions[status]
	return ok
}

// IsRefundStatus reports whether the status carries refund details.
func IsRefundStatus(status ExecutionStatus) bool {
	return status == ExecutionStatusRefunded || status == ExecutionStatusPartiallyRefunded
}
