// Package caretask contains care task scheduling use cases.
package caretask

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// MaxGeneratedExecutions bounds a single generation pass. A daily task over
// a full year produces at most 366 rows.
const MaxGeneratedExecutions = 366

// GenerateExecutionsInput represents the input for execution generation.
type GenerateExecutionsInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
}

// GenerateExecutionsOutput represents the output of execution generation.
type GenerateExecutionsOutput struct {
	Created []*entity.Execution
	Skipped int
}

// GenerateExecutionsUseCase materializes TODO executions for every occurrence
// of a task's recurrence between its start and end dates. Occurrences that
// already have an execution are skipped, so repeated runs are idempotent.
type GenerateExecutionsUseCase struct {
	taskRepo      adapter.CareTaskRepository
	executionRepo adapter.ExecutionRepository
	clientRepo    adapter.ClientRepository
}

// NewGenerateExecutionsUseCase creates a new GenerateExecutionsUseCase instance.
func NewGenerateExecutionsUseCase(
	taskRepo adapter.CareTaskRepository,
	executionRepo adapter.ExecutionRepository,
	clientRepo adapter.ClientRepository,
) *GenerateExecutionsUseCase {
	return &GenerateExecutionsUseCase{
		taskRepo:      taskRepo,
		executionRepo: executionRepo,
		clientRepo:    clientRepo,
	}
}

// Execute materializes executions for the task.
func (uc *GenerateExecutionsUseCase) Execute(ctx context.Context, input GenerateExecutionsInput) (*GenerateExecutionsOutput, error) {
	task, err := loadOwnedTask(ctx, uc.taskRepo, uc.clientRepo, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}
	if !task.IsActive {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeTaskInactive,
			"cannot generate executions for an inactive task",
			domainerror.ErrTaskInactive,
		)
	}

	created, skipped, err := MaterializeExecutions(ctx, uc.executionRepo, task)
	if err != nil {
		return nil, err
	}

	return &GenerateExecutionsOutput{Created: created, Skipped: skipped}, nil
}

// MaterializeExecutions creates missing TODO executions for the task's
// occurrences. Shared between the on-demand use case and the background sweep.
func MaterializeExecutions(
	ctx context.Context,
	executionRepo adapter.ExecutionRepository,
	task *entity.CareTask,
) ([]*entity.Execution, int, error) {
	recurrence := valueobject.Recurrence{IntervalDays: task.RecurrenceIntervalDays}

	end := task.StartDate
	if task.EndDate != nil {
		end = *task.EndDate
	}

	occurrences := recurrence.OccurrencesBetween(task.StartDate, end)
	if len(occurrences) > MaxGeneratedExecutions {
		occurrences = occurrences[:MaxGeneratedExecutions]
	}

	var created []*entity.Execution
	skipped := 0
	for _, date := range occurrences {
		exists, err := executionRepo.ExistsForTaskOnDate(ctx, task.ID, date)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to check existing execution: %w", err)
		}
		if exists {
			skipped++
			continue
		}
		created = append(created, entity.NewExecution(task.ID, date))
	}

	if len(created) > 0 {
		if err := executionRepo.CreateBatch(ctx, created); err != nil {
			return nil, 0, fmt.Errorf("failed to create executions: %w", err)
		}
	}

	return created, skipped, nil
}
