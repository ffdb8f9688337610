// Package caretask contains care task scheduling use cases.
package caretask

import (
	"context"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// GetCareTaskInput represents the input for fetching a single care task.
type GetCareTaskInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
}

// GetCareTaskOutput represents the output of fetching a single care task.
type GetCareTaskOutput struct {
	Task       *entity.CareTask
	Recurrence string
}

// GetCareTaskUseCase handles fetching a single care task.
type GetCareTaskUseCase struct {
	taskRepo   adapter.CareTaskRepository
	clientRepo adapter.ClientRepository
}

// NewGetCareTaskUseCase creates a new GetCareTaskUseCase instance.
func NewGetCareTaskUseCase(taskRepo adapter.CareTaskRepository, clientRepo adapter.ClientRepository) *GetCareTaskUseCase {
	return &GetCareTaskUseCase{
		taskRepo:   taskRepo,
		clientRepo: clientRepo,
	}
}

// Execute fetches the care task after checking ownership.
func (uc *GetCareTaskUseCase) Execute(ctx context.Context, input GetCareTaskInput) (*GetCareTaskOutput, error) {
	task, err := loadOwnedTask(ctx, uc.taskRepo, uc.clientRepo, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	recurrence := valueobject.Recurrence{IntervalDays: task.RecurrenceIntervalDays}

	return &GetCareTaskOutput{
		Task:       task,
		Recurrence: recurrence.Describe(),
	}, nil
}
