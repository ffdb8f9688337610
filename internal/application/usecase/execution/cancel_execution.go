// Package execution contains execution lifecycle use cases.
package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// CancelExecutionInput represents the input for cancelling an execution.
type CancelExecutionInput struct {
	UserID      uuid.UUID
	ExecutionID uuid.UUID
	Notes       *string
}

// CancelExecutionOutput represents the output of cancelling an execution.
type CancelExecutionOutput struct {
	Execution *entity.Execution
}

// CancelExecutionUseCase handles the TODO -> CANCELLED transition.
// Cancelled executions never contribute to spend.
type CancelExecutionUseCase struct {
	executionRepo adapter.ExecutionRepository
	taskRepo      adapter.CareTaskRepository
	clientRepo    adapter.ClientRepository
}

// NewCancelExecutionUseCase creates a new CancelExecutionUseCase instance.
func NewCancelExecutionUseCase(
	executionRepo adapter.ExecutionRepository,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
) *CancelExecutionUseCase {
	return &CancelExecutionUseCase{
		executionRepo: executionRepo,
		taskRepo:      taskRepo,
		clientRepo:    clientRepo,
	}
}

// Execute performs the cancellation.
func (uc *CancelExecutionUseCase) Execute(ctx context.Context, input CancelExecutionInput) (*CancelExecutionOutput, error) {
	exec, _, err := loadOwnedExecution(ctx, uc.executionRepo, uc.taskRepo, uc.clientRepo, input.UserID, input.ExecutionID)
	if err != nil {
		return nil, err
	}

	if !exec.CanTransitionTo(entity.ExecutionStatusCancelled) {
		return nil, transitionError(exec.Status, entity.ExecutionStatusCancelled)
	}

	exec.Status = entity.ExecutionStatusCancelled
	if input.Notes != nil {
		exec.Notes = *input.Notes
	}
	exec.UpdatedAt = time.Now().UTC()

	if err := uc.executionRepo.Update(ctx, exec); err != nil {
		return nil, fmt.Errorf("failed to update execution: %w", err)
	}

	return &CancelExecutionOutput{Execution: exec}, nil
}
