// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// ExecutionFilter narrows execution listings.
type ExecutionFilter struct {
	CareTaskID *uuid.UUID
	ClientID   *uuid.UUID
	Status     *entity.ExecutionStatus
	From       *time.Time
	To         *time.Time
}

// ExecutionRepository defines the interface for execution persistence operations.
type ExecutionRepository interface {
	// Create creates a new execution in the database.
	Create(ctx context.Context, execution *entity.Execution) error

	// CreateBatch inserts a batch of executions in one transaction.
	CreateBatch(ctx context.Context, executions []*entity.Execution) error

	// FindByID retrieves an execution by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Execution, error)

	// List retrieves executions matching the filter, ordered by scheduled date.
	List(ctx context.Context, filter ExecutionFilter) ([]*entity.Execution, error)

	// ExistsForTaskOnDate checks whether the task already has an execution
	// scheduled on the given date. Keeps the materialization sweep idempotent.
	ExistsForTaskOnDate(ctx context.Context, taskID uuid.UUID, date time.Time) (bool, error)

	// Update updates an existing execution in the database.
	Update(ctx context.Context, execution *entity.Execution) error

	// Delete removes an execution.
	Delete(ctx context.Context, id uuid.UUID) error
}
