// Package execution contains execution lifecycle use cases.
package execution

import (
	"context"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// GetExecutionInput represents the input for fetching a single execution.
type GetExecutionInput struct {
	UserID      uuid.UUID
	ExecutionID uuid.UUID
}

// GetExecutionOutput represents the output of fetching a single execution.
// FieldConfig tells the caller which fields are visible and editable given
// the execution's current status.
type GetExecutionOutput struct {
	Execution   *entity.Execution
	FieldConfig valueobject.FieldConfig
}

// GetExecutionUseCase handles fetching a single execution with its field table.
type GetExecutionUseCase struct {
	executionRepo adapter.ExecutionRepository
	taskRepo      adapter.CareTaskRepository
	clientRepo    adapter.ClientRepository
}

// NewGetExecutionUseCase creates a new GetExecutionUseCase instance.
func NewGetExecutionUseCase(
	executionRepo adapter.ExecutionRepository,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
) *GetExecutionUseCase {
	return &GetExecutionUseCase{
		executionRepo: executionRepo,
		taskRepo:      taskRepo,
		clientRepo:    clientRepo,
	}
}

// Execute fetches the execution after checking ownership.
func (uc *GetExecutionUseCase) Execute(ctx context.Context, input GetExecutionInput) (*GetExecutionOutput, error) {
	exec, _, err := loadOwnedExecution(ctx, uc.executionRepo, uc.taskRepo, uc.clientRepo, input.UserID, input.ExecutionID)
	if err != nil {
		return nil, err
	}

	cfg, err := valueobject.ExecutionFieldConfig(valueobject.FieldModeEdit, exec.Status)
	if err != nil {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeInvalidStatus,
			"execution has an unknown status",
			err,
		)
	}

	return &GetExecutionOutput{
		Execution:   exec,
		FieldConfig: cfg,
	}, nil
}
