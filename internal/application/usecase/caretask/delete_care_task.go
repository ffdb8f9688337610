// Package caretask contains care task scheduling use cases.
package caretask

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
)

// DeleteCareTaskInput represents the input for care task deletion.
type DeleteCareTaskInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
}

// DeleteCareTaskOutput represents the output of care task deletion.
type DeleteCareTaskOutput struct {
	Message string
}

// DeleteCareTaskUseCase handles care task deletion logic.
type DeleteCareTaskUseCase struct {
	taskRepo   adapter.CareTaskRepository
	clientRepo adapter.ClientRepository
}

// NewDeleteCareTaskUseCase creates a new DeleteCareTaskUseCase instance.
func NewDeleteCareTaskUseCase(taskRepo adapter.CareTaskRepository, clientRepo adapter.ClientRepository) *DeleteCareTaskUseCase {
	return &DeleteCareTaskUseCase{
		taskRepo:   taskRepo,
		clientRepo: clientRepo,
	}
}

// Execute soft-deletes the care task after checking ownership.
func (uc *DeleteCareTaskUseCase) Execute(ctx context.Context, input DeleteCareTaskInput) (*DeleteCareTaskOutput, error) {
	if _, err := loadOwnedTask(ctx, uc.taskRepo, uc.clientRepo, input.UserID, input.TaskID); err != nil {
		return nil, err
	}

	if err := uc.taskRepo.Delete(ctx, input.TaskID); err != nil {
		return nil, fmt.Errorf("failed to delete care task: %w", err)
	}

	return &DeleteCareTaskOutput{Message: "Care task deleted successfully"}, nil
}
