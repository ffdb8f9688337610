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

// MaxTaskNameLength is the maximum allowed length for care task names.
const MaxTaskNameLength = 100

// CreateCareTaskInput represents the input for care task creation.
type CreateCareTaskInput struct {
	UserID                 uuid.UUID
	ClientID               uuid.UUID
	CategoryID             uuid.UUID
	SubcategoryID          *uuid.UUID
	Name                   string
	Description            string
	TaskType               entity.TaskType
	RecurrenceIntervalDays int
	StartDate              time.Time
	EndDate                *time.Time
	YearlyBudget           *decimal.Decimal
}

// CreateCareTaskOutput represents the output of care task creation.
type CreateCareTaskOutput struct {
	Task       *entity.CareTask
	Recurrence string
}

// CreateCareTaskUseCase handles care task creation logic.
type CreateCareTaskUseCase struct {
	taskRepo     adapter.CareTaskRepository
	categoryRepo adapter.CategoryRepository
	clientRepo   adapter.ClientRepository
	now          func() time.Time
}

// NewCreateCareTaskUseCase creates a new CreateCareTaskUseCase instance.
func NewCreateCareTaskUseCase(
	taskRepo adapter.CareTaskRepository,
	categoryRepo adapter.CategoryRepository,
	clientRepo adapter.ClientRepository,
) *CreateCareTaskUseCase {
	return &CreateCareTaskUseCase{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		clientRepo:   clientRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Intended for tests.
func (uc *CreateCareTaskUseCase) WithClock(now func() time.Time) *CreateCareTaskUseCase {
	uc.now = now
	return uc
}

// Execute performs the care task creation.
func (uc *CreateCareTaskUseCase) Execute(ctx context.Context, input CreateCareTaskInput) (*CreateCareTaskOutput, error) {
	if _, err := authorizeClient(ctx, uc.clientRepo, input.UserID, input.ClientID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxTaskNameLength {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeMissingTaskFields,
			fmt.Sprintf("task name is required and must not exceed %d characters", MaxTaskNameLength),
			domainerror.ErrTaskNotFound,
		)
	}

	if input.TaskType != entity.TaskTypeGeneral && input.TaskType != entity.TaskTypePurchase {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeInvalidTaskType,
			"task type must be 'GENERAL' or 'PURCHASE'",
			domainerror.ErrInvalidTaskType,
		)
	}

	if input.YearlyBudget != nil && input.TaskType != entity.TaskTypePurchase {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeBudgetOnGeneralTask,
			"yearly budget is only valid for purchase tasks",
			domainerror.ErrBudgetOnGeneralTask,
		)
	}
	if input.YearlyBudget != nil && input.YearlyBudget.IsNegative() {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeMissingTaskFields,
			"yearly budget must not be negative",
			domainerror.ErrBudgetOnGeneralTask,
		)
	}

	recurrence, err := valueobject.NewRecurrence(input.RecurrenceIntervalDays)
	if err != nil {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurrence interval must be a non-negative number of days",
			domainerror.ErrInvalidRecurrenceInterval,
		)
	}

	// Task dates are scoped to the calendar year containing now.
	window := valueobject.ActiveYearWindow(uc.now())
	if err := window.ValidateStart(input.StartDate); err != nil {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeDateOutOfYear,
			"start date must fall within the active calendar year",
			err,
		)
	}

	if recurrence.IsOneOff() {
		if input.EndDate != nil {
			return nil, domainerror.NewCareTaskError(
				domainerror.ErrCodeOneOffEndDate,
				"one-off tasks must not have an end date",
				domainerror.ErrOneOffEndDate,
			)
		}
	} else {
		if input.EndDate == nil {
			return nil, domainerror.NewCareTaskError(
				domainerror.ErrCodeEndDateRequired,
				"end date is required for recurring tasks",
				domainerror.ErrEndDateRequired,
			)
		}
		if err := window.ValidateEnd(*input.EndDate, input.StartDate); err != nil {
			code := domainerror.ErrCodeDateOutOfYear
			msg := "end date must fall within the active calendar year"
			if errors.Is(err, domainerror.ErrEndBeforeStart) {
				code = domainerror.ErrCodeEndBeforeStart
				msg = "end date must not precede start date"
			}
			return nil, domainerror.NewCareTaskError(code, msg, err)
		}
	}

	// Validate category linkage
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	if category.ClientID != input.ClientID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"category does not belong to this client",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
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
		if subcategory.CategoryID != input.CategoryID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeSubcategoryWrongParent,
				"subcategory does not belong to this category",
				domainerror.ErrSubcategoryWrongCategory,
			)
		}
	}

	task := entity.NewCareTask(
		input.ClientID,
		input.CategoryID,
		input.SubcategoryID,
		name,
		input.Description,
		input.TaskType,
		input.RecurrenceIntervalDays,
		input.StartDate,
		input.EndDate,
		input.YearlyBudget,
	)

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create care task: %w", err)
	}

	return &CreateCareTaskOutput{
		Task:       task,
		Recurrence: recurrence.Describe(),
	}, nil
}
