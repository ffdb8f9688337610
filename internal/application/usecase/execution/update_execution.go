// Package execution contains execution lifecycle use cases.
package execution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// UpdateExecutionInput represents the input for field-level execution edits.
// Nil pointer fields are left unchanged. Which fields may be written depends
// on the execution's current status.
type UpdateExecutionInput struct {
	UserID        uuid.UUID
	ExecutionID   uuid.UUID
	ScheduledDate *time.Time
	ActualCost    *decimal.Decimal
	Notes         *string
	RefundAmount  *decimal.Decimal
}

// UpdateExecutionOutput represents the output of execution edits.
type UpdateExecutionOutput struct {
	Execution *entity.Execution
}

// UpdateExecutionUseCase handles non-transition edits to an execution. The
// per-status field table decides what is writable; status changes go through
// the dedicated transition use cases instead.
type UpdateExecutionUseCase struct {
	executionRepo adapter.ExecutionRepository
	taskRepo      adapter.CareTaskRepository
	clientRepo    adapter.ClientRepository
	alertChecker  BudgetAlertChecker
}

// NewUpdateExecutionUseCase creates a new UpdateExecutionUseCase instance.
// alertChecker may be nil when budget alerting is disabled.
func NewUpdateExecutionUseCase(
	executionRepo adapter.ExecutionRepository,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
	alertChecker BudgetAlertChecker,
) *UpdateExecutionUseCase {
	return &UpdateExecutionUseCase{
		executionRepo: executionRepo,
		taskRepo:      taskRepo,
		clientRepo:    clientRepo,
		alertChecker:  alertChecker,
	}
}

// Execute performs the field-level update.
func (uc *UpdateExecutionUseCase) Execute(ctx context.Context, input UpdateExecutionInput) (*UpdateExecutionOutput, error) {
	exec, task, err := loadOwnedExecution(ctx, uc.executionRepo, uc.taskRepo, uc.clientRepo, input.UserID, input.ExecutionID)
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

	if input.ScheduledDate != nil {
		if !cfg.Editable(valueobject.FieldScheduledDate) {
			return nil, fieldNotEditable(valueobject.FieldScheduledDate, exec.Status)
		}
		if input.ScheduledDate.Before(task.StartDate) {
			return nil, domainerror.NewExecutionError(
				domainerror.ErrCodeScheduledBeforeTaskStart,
				"scheduled date must not precede the task start date",
				domainerror.ErrScheduledBeforeTaskStart,
			)
		}
		exec.ScheduledDate = *input.ScheduledDate
	}

	spendChanged := false
	if input.ActualCost != nil {
		if !cfg.Editable(valueobject.FieldActualCost) {
			return nil, fieldNotEditable(valueobject.FieldActualCost, exec.Status)
		}
		if input.ActualCost.IsNegative() {
			return nil, domainerror.NewExecutionError(
				domainerror.ErrCodeNegativeCost,
				"actual cost must not be negative",
				domainerror.ErrNegativeCost,
			)
		}
		exec.ActualCost = input.ActualCost
		spendChanged = true
	}

	if input.Notes != nil {
		if !cfg.Editable(valueobject.FieldNotes) {
			return nil, fieldNotEditable(valueobject.FieldNotes, exec.Status)
		}
		exec.Notes = *input.Notes
	}

	if input.RefundAmount != nil {
		if !cfg.Editable(valueobject.FieldRefundAmount) {
			return nil, fieldNotEditable(valueobject.FieldRefundAmount, exec.Status)
		}
		if input.RefundAmount.IsNegative() {
			return nil, domainerror.NewExecutionError(
				domainerror.ErrCodeNegativeRefundAmount,
				"refund amount must not be negative",
				domainerror.ErrNegativeRefundAmount,
			)
		}
		if exec.ActualCost != nil && input.RefundAmount.GreaterThan(*exec.ActualCost) {
			return nil, domainerror.NewExecutionError(
				domainerror.ErrCodeRefundExceedsCost,
				"refund amount exceeds actual cost",
				domainerror.ErrRefundExceedsCost,
			)
		}
		if exec.Refund == nil {
			exec.Refund = &entity.Refund{}
		}
		exec.Refund.Amount = *input.RefundAmount
	}

	exec.UpdatedAt = time.Now().UTC()

	if err := uc.executionRepo.Update(ctx, exec); err != nil {
		return nil, fmt.Errorf("failed to update execution: %w", err)
	}

	if spendChanged && uc.alertChecker != nil {
		if err := uc.alertChecker.CheckCategory(ctx, input.UserID, task.ClientID, task.CategoryID); err != nil {
			slog.Warn("Budget alert check failed", "error", err, "executionID", exec.ID)
		}
	}

	return &UpdateExecutionOutput{Execution: exec}, nil
}

func fieldNotEditable(field string, status entity.ExecutionStatus) error {
	return domainerror.NewExecutionError(
		domainerror.ErrCodeFieldNotEditable,
		fmt.Sprintf("field %q is not editable while the execution is %s", field, status),
		domainerror.ErrFieldNotEditable,
	)
}
