// Package execution contains execution lifecycle use cases.
package execution

import (
	"context"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// loadOwnedExecution loads an execution and walks the ownership chain:
// execution -> care task -> client -> user.
func loadOwnedExecution(
	ctx context.Context,
	executionRepo adapter.ExecutionRepository,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
	userID, executionID uuid.UUID,
) (*entity.Execution, *entity.CareTask, error) {
	exec, err := executionRepo.FindByID(ctx, executionID)
	if err != nil {
		return nil, nil, domainerror.NewExecutionError(
			domainerror.ErrCodeExecutionNotFound,
			"execution not found",
			domainerror.ErrExecutionNotFound,
		)
	}

	task, err := taskRepo.FindByID(ctx, exec.CareTaskID)
	if err != nil {
		return nil, nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeTaskNotFound,
			"care task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	client, err := clientRepo.FindByID(ctx, task.ClientID)
	if err != nil {
		return nil, nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}
	if client.UserID != userID {
		return nil, nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeNotAuthorizedTask,
			"not authorized to access this execution",
			domainerror.ErrNotAuthorizedForTask,
		)
	}

	return exec, task, nil
}

// transitionError builds the standard invalid-transition error.
func transitionError(from, to entity.ExecutionStatus) error {
	return domainerror.NewExecutionError(
		domainerror.ErrCodeInvalidStatusTransition,
		"cannot transition execution from "+string(from)+" to "+string(to),
		domainerror.ErrInvalidStatusTransition,
	)
}
