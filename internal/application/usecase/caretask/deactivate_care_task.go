// Package caretask contains care task scheduling use cases.
package caretask

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// SetCareTaskActiveInput represents the input for toggling a task's active flag.
type SetCareTaskActiveInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
	Active bool
}

// SetCareTaskActiveOutput represents the output of toggling a task's active flag.
type SetCareTaskActiveOutput struct {
	Task *entity.CareTask
}

// SetCareTaskActiveUseCase handles activating and deactivating care tasks.
// Deactivated tasks stop producing new executions but keep their history.
type SetCareTaskActiveUseCase struct {
	taskRepo   adapter.CareTaskRepository
	clientRepo adapter.ClientRepository
}

// NewSetCareTaskActiveUseCase creates a new SetCareTaskActiveUseCase instance.
func NewSetCareTaskActiveUseCase(taskRepo adapter.CareTaskRepository, clientRepo adapter.ClientRepository) *SetCareTaskActiveUseCase {
	return &SetCareTaskActiveUseCase{
		taskRepo:   taskRepo,
		clientRepo: clientRepo,
	}
}

// Execute toggles the task's active flag.
func (uc *SetCareTaskActiveUseCase) Execute(ctx context.Context, input SetCareTaskActiveInput) (*SetCareTaskActiveOutput, error) {
	task, err := loadOwnedTask(ctx, uc.taskRepo, uc.clientRepo, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	task.IsActive = input.Active
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update care task: %w", err)
	}

	return &SetCareTaskActiveOutput{Task: task}, nil
}
