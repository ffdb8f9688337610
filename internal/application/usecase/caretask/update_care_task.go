// Package caretask contains care task scheduling use cases.
package caretask

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// UpdateCareTaskInput represents the input for care task updates.
// Nil pointer fields are left unchanged. ClearEndDate removes the end date
// when the task is also being switched to one-off.
type UpdateCareTaskInput struct {
	UserID                 uuid.UUID
	TaskID                 uuid.UUID
	Name                   *string
	Description            *string
	RecurrenceIntervalDays *int
	StartDate              *time.Time
	EndDate                *time.Time
	ClearEndDate           bool
	YearlyBudget           *decimal.Decimal
	SubcategoryID          *uuid.UUID
}

// UpdateCareTaskOutput represents the output of care task updates.
type UpdateCareTaskOutput struct {
	Task       *entity.CareTask
	Recurrence string
}

// UpdateCareTaskUseCase handles care task update logic.
type UpdateCareTaskUseCase struct {
	taskRepo     adapter.CareTaskRepository
	categoryRepo adapter.CategoryRepository
	clientRepo   adapter.ClientRepository
	now          func() time.Time
}

// NewUpdateCareTaskUseCase creates a new UpdateCareTaskUseCase instance.
func NewUpdateCareTaskUseCase(
	taskRepo adapter.CareTaskRepository,
	categoryRepo adapter.CategoryRepository,
	clientRepo adapter.ClientRepository,
) *UpdateCareTaskUseCase {
	return &UpdateCareTaskUseCase{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		clientRepo:   clientRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Intended for tests.
func (uc *UpdateCareTaskUseCase) WithClock(now func() time.Time) *UpdateCareTaskUseCase {
	uc.now = now
	return uc
}

// Execute performs the care task update. The merged task is re-validated
// against the recurrence and date-window rules before persisting.
func (uc *UpdateCareTaskUseCase) Execute(ctx context.Context, input UpdateCareTaskInput) (*UpdateCareTaskOutput, error) {
	task, err := loadOwnedTask(ctx, uc.taskRepo, uc.clientRepo, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxTaskNameLength {
			return nil, domainerror.NewCareTaskError(
				domainerror.ErrCodeMissingTaskFields,
				fmt.Sprintf("task name is required and must not exceed %d characters", MaxTaskNameLength),
				domainerror.ErrTaskNotFound,
			)
		}
		task.Name = name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.RecurrenceIntervalDays != nil {
		task.RecurrenceIntervalDays = *input.RecurrenceIntervalDays
	}
	if input.StartDate != nil {
		task.StartDate = *input.StartDate
	}
	if input.ClearEndDate {
		task.EndDate = nil
	} else if input.EndDate != nil {
		task.EndDate = input.EndDate
	}
	if input.YearlyBudget != nil {
		if task.TaskType != entity.TaskTypePurchase {
			return nil, domainerror.NewCareTaskError(
				domainerror.ErrCodeBudgetOnGeneralTask,
				"yearly budget is only valid for purchase tasks",
				domainerror.ErrBudgetOnGeneralTask,
			)
		}
		if input.YearlyBudget.IsNegative() {
			return nil, domainerror.NewCareTaskError(
				domainerror.ErrCodeMissingTaskFields,
				"yearly budget must not be negative",
				domainerror.ErrBudgetOnGeneralTask,
			)
		}
		task.YearlyBudget = input.YearlyBudget
	}
	if input.SubcategoryID != nil {
		subcategory, err := uc.categoryRepo.FindSubcategoryByID(ctx, *input.SubcategoryID)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeSubcategoryNotFound,
				"subcategory not found",
				domainerror.ErrSubcategoryNotFound,
			)
		}
		if subcategory.CategoryID != task.CategoryID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeSubcategoryWrongParent,
				"subcategory does not belong to this category",
				domainerror.ErrSubcategoryWrongCategory,
			)
		}
		task.SubcategoryID = input.SubcategoryID
	}

	// Re-validate the merged schedule
	recurrence, err := valueobject.NewRecurrence(task.RecurrenceIntervalDays)
	if err != nil {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurrence interval must be a non-negative number of days",
			domainerror.ErrInvalidRecurrenceInterval,
		)
	}
	window := valueobject.ActiveYearWindow(uc.now())
	if err := window.ValidateStart(task.StartDate); err != nil {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeDateOutOfYear,
			"start date must fall within the active calendar year",
			err,
		)
	}
	if recurrence.IsOneOff() {
		if task.EndDate != nil {
			return nil, domainerror.NewCareTaskError(
				domainerror.ErrCodeOneOffEndDate,
				"one-off tasks must not have an end date",
				domainerror.ErrOneOffEndDate,
			)
		}
	} else {
		if task.EndDate == nil {
			return nil, domainerror.NewCareTaskError(
				domainerror.ErrCodeEndDateRequired,
				"end date is required for recurring tasks",
				domainerror.ErrEndDateRequired,
			)
		}
		if err := window.ValidateEnd(*task.EndDate, task.StartDate); err != nil {
			code := domainerror.ErrCodeDateOutOfYear
			msg := "end date must fall within the active calendar year"
			if errors.Is(err, domainerror.ErrEndBeforeStart) {
				code = domainerror.ErrCodeEndBeforeStart
				msg = "end date must not precede start date"
			}
			return nil, domainerror.NewCareTaskError(code, msg, err)
		}
	}

	task.UpdatedAt = uc.now()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update care task: %w", err)
	}

	return &UpdateCareTaskOutput{
		Task:       task,
		Recurrence: recurrence.Describe(),
	}, nil
}
