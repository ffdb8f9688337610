// Package execution contains execution lifecycle use cases.
package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// CreateExecutionInput represents the input for manual execution creation.
type CreateExecutionInput struct {
	UserID        uuid.UUID
	TaskID        uuid.UUID
	ScheduledDate time.Time
	Notes         string
}

// CreateExecutionOutput represents the output of execution creation.
type CreateExecutionOutput struct {
	Execution *entity.Execution
}

// CreateExecutionUseCase handles manual creation of a single execution.
// Executions always start in TODO; everything beyond schedule and notes is
// captured later through the lifecycle transitions.
type CreateExecutionUseCase struct {
	executionRepo adapter.ExecutionRepository
	taskRepo      adapter.CareTaskRepository
	clientRepo    adapter.ClientRepository
}

// NewCreateExecutionUseCase creates a new CreateExecutionUseCase instance.
func NewCreateExecutionUseCase(
	executionRepo adapter.ExecutionRepository,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
) *CreateExecutionUseCase {
	return &CreateExecutionUseCase{
		executionRepo: executionRepo,
		taskRepo:      taskRepo,
		clientRepo:    clientRepo,
	}
}

// Execute performs the execution creation.
func (uc *CreateExecutionUseCase) Execute(ctx context.Context, input CreateExecutionInput) (*CreateExecutionOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeTaskNotFound,
			"care task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	client, err := uc.clientRepo.FindByID(ctx, task.ClientID)
	if err != nil {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}
	if client.UserID != input.UserID {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeNotAuthorizedTask,
			"not authorized to access this care task",
			domainerror.ErrNotAuthorizedForTask,
		)
	}
	if !task.IsActive {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeTaskInactive,
			"cannot add executions to an inactive task",
			domainerror.ErrTaskInactive,
		)
	}

	if input.ScheduledDate.Before(task.StartDate) {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeScheduledBeforeTaskStart,
			"scheduled date must not precede the task start date",
			domainerror.ErrScheduledBeforeTaskStart,
		)
	}

	exec := entity.NewExecution(task.ID, input.ScheduledDate)
	exec.Notes = input.Notes

	if err := uc.executionRepo.Create(ctx, exec); err != nil {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	return &CreateExecutionOutput{Execution: exec}, nil
}
