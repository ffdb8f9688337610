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
)

// RefundExecutionInput represents the input for refunding an execution.
type RefundExecutionInput struct {
	UserID      uuid.UUID
	ExecutionID uuid.UUID
	Status      entity.ExecutionStatus // REFUNDED or PARTIALLY_REFUNDED
	Amount      *decimal.Decimal
	Date        *time.Time
	Reason      string
	EvidenceURL string
}

// RefundExecutionOutput represents the output of refunding an execution.
type RefundExecutionOutput struct {
	Execution *entity.Execution
}

// RefundExecutionUseCase handles DONE -> REFUNDED / PARTIALLY_REFUNDED.
// Refunds are single-shot: both target statuses are terminal, though the
// recorded refund amount stays editable afterwards.
type RefundExecutionUseCase struct {
	executionRepo adapter.ExecutionRepository
	taskRepo      adapter.CareTaskRepository
	clientRepo    adapter.ClientRepository
	alertChecker  BudgetAlertChecker
}

// NewRefundExecutionUseCase creates a new RefundExecutionUseCase instance.
// alertChecker may be nil when budget alerting is disabled.
func NewRefundExecutionUseCase(
	executionRepo adapter.ExecutionRepository,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
	alertChecker BudgetAlertChecker,
) *RefundExecutionUseCase {
	return &RefundExecutionUseCase{
		executionRepo: executionRepo,
		taskRepo:      taskRepo,
		clientRepo:    clientRepo,
		alertChecker:  alertChecker,
	}
}

// Execute performs the refund transition.
func (uc *RefundExecutionUseCase) Execute(ctx context.Context, input RefundExecutionInput) (*RefundExecutionOutput, error) {
	if !entity.IsRefundStatus(input.Status) {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeInvalidStatus,
			"refund status must be 'REFUNDED' or 'PARTIALLY_REFUNDED'",
			domainerror.ErrInvalidExecutionStatus,
		)
	}

	exec, task, err := loadOwnedExecution(ctx, uc.executionRepo, uc.taskRepo, uc.clientRepo, input.UserID, input.ExecutionID)
	if err != nil {
		return nil, err
	}

	if !exec.CanTransitionTo(input.Status) {
		return nil, transitionError(exec.Status, input.Status)
	}

	if input.Amount == nil {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeMissingRefundAmount,
			"refund amount is required",
			domainerror.ErrMissingRefundAmount,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeNegativeRefundAmount,
			"refund amount must not be negative",
			domainerror.ErrNegativeRefundAmount,
		)
	}
	if exec.ActualCost != nil && input.Amount.GreaterThan(*exec.ActualCost) {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeRefundExceedsCost,
			"refund amount exceeds actual cost",
			domainerror.ErrRefundExceedsCost,
		)
	}

	now := time.Now().UTC()
	refundDate := now
	if input.Date != nil {
		refundDate = *input.Date
	}

	exec.Status = input.Status
	exec.Refund = &entity.Refund{
		Amount:      *input.Amount,
		Date:        &refundDate,
		Reason:      input.Reason,
		EvidenceURL: input.EvidenceURL,
	}
	exec.UpdatedAt = now

	if err := uc.executionRepo.Update(ctx, exec); err != nil {
		return nil, fmt.Errorf("failed to update execution: %w", err)
	}

	// The execution no longer counts as spend; drop the stale cached
	// breakdown and re-check alert levels best-effort.
	if uc.alertChecker != nil {
		if err := uc.alertChecker.CheckCategory(ctx, input.UserID, task.ClientID, task.CategoryID); err != nil {
			slog.Warn("Budget alert check failed", "error", err, "executionID", exec.ID)
		}
	}

	return &RefundExecutionOutput{Execution: exec}, nil
}
