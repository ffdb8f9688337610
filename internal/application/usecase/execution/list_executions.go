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

// ListExecutionsInput represents the input for listing executions.
// Either TaskID or ClientID must be provided.
type ListExecutionsInput struct {
	UserID   uuid.UUID
	TaskID   *uuid.UUID
	ClientID *uuid.UUID
	Status   *entity.ExecutionStatus
	From     *time.Time
	To       *time.Time
}

// ListExecutionsOutput represents the output of listing executions.
type ListExecutionsOutput struct {
	Executions []*entity.Execution
}

// ListExecutionsUseCase handles listing executions for a task or client.
type ListExecutionsUseCase struct {
	executionRepo adapter.ExecutionRepository
	taskRepo      adapter.CareTaskRepository
	clientRepo    adapter.ClientRepository
}

// NewListExecutionsUseCase creates a new ListExecutionsUseCase instance.
func NewListExecutionsUseCase(
	executionRepo adapter.ExecutionRepository,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
) *ListExecutionsUseCase {
	return &ListExecutionsUseCase{
		executionRepo: executionRepo,
		taskRepo:      taskRepo,
		clientRepo:    clientRepo,
	}
}

// Execute lists executions matching the filter after checking ownership.
func (uc *ListExecutionsUseCase) Execute(ctx context.Context, input ListExecutionsInput) (*ListExecutionsOutput, error) {
	if input.Status != nil && !entity.IsValidExecutionStatus(*input.Status) {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeInvalidStatus,
			"unknown execution status filter",
			domainerror.ErrInvalidExecutionStatus,
		)
	}

	switch {
	case input.TaskID != nil:
		task, err := uc.taskRepo.FindByID(ctx, *input.TaskID)
		if err != nil {
			return nil, domainerror.NewCareTaskError(
				domainerror.ErrCodeTaskNotFound,
				"care task not found",
				domainerror.ErrTaskNotFound,
			)
		}
		if err := uc.checkClientOwnership(ctx, input.UserID, task.ClientID); err != nil {
			return nil, err
		}
	case input.ClientID != nil:
		if err := uc.checkClientOwnership(ctx, input.UserID, *input.ClientID); err != nil {
			return nil, err
		}
	default:
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeMissingExecutionFields,
			"either a task or a client filter is required",
			domainerror.ErrExecutionNotFound,
		)
	}

	executions, err := uc.executionRepo.List(ctx, adapter.ExecutionFilter{
		CareTaskID: input.TaskID,
		ClientID:   input.ClientID,
		Status:     input.Status,
		From:       input.From,
		To:         input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	return &ListExecutionsOutput{Executions: executions}, nil
}

func (uc *ListExecutionsUseCase) checkClientOwnership(ctx context.Context, userID, clientID uuid.UUID) error {
	client, err := uc.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}
	if client.UserID != userID {
		return domainerror.NewClientError(
			domainerror.ErrCodeNotAuthorizedClient,
			"not authorized to access this client",
			domainerror.ErrNotAuthorizedForClient,
		)
	}
	return nil
}
