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

// BudgetAlertChecker re-evaluates a category's budget after spend changes
// and queues alert notifications when a threshold is crossed.
type BudgetAlertChecker interface {
	CheckCategory(ctx context.Context, userID, clientID, categoryID uuid.UUID) error
}

// MarkDoneInput represents the input for completing an execution.
type MarkDoneInput struct {
	UserID            uuid.UUID
	ExecutionID       uuid.UUID
	ExecutionDate     *time.Time // Defaults to now
	ActualCost        *decimal.Decimal
	QuantityPurchased *int
	QuantityUnit      *string
	Notes             *string
}

// MarkDoneOutput represents the output of completing an execution.
type MarkDoneOutput struct {
	Execution *entity.Execution
}

// MarkDoneUseCase handles the TODO -> DONE transition. Completing an
// execution records the actual spend that budget aggregation counts.
type MarkDoneUseCase struct {
	executionRepo adapter.ExecutionRepository
	taskRepo      adapter.CareTaskRepository
	clientRepo    adapter.ClientRepository
	alertChecker  BudgetAlertChecker
}

// NewMarkDoneUseCase creates a new MarkDoneUseCase instance.
// alertChecker may be nil when budget alerting is disabled.
func NewMarkDoneUseCase(
	executionRepo adapter.ExecutionRepository,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
	alertChecker BudgetAlertChecker,
) *MarkDoneUseCase {
	return &MarkDoneUseCase{
		executionRepo: executionRepo,
		taskRepo:      taskRepo,
		clientRepo:    clientRepo,
		alertChecker:  alertChecker,
	}
}

// Execute performs the completion.
func (uc *MarkDoneUseCase) Execute(ctx context.Context, input MarkDoneInput) (*MarkDoneOutput, error) {
	exec, task, err := loadOwnedExecution(ctx, uc.executionRepo, uc.taskRepo, uc.clientRepo, input.UserID, input.ExecutionID)
	if err != nil {
		return nil, err
	}

	if !exec.CanTransitionTo(entity.ExecutionStatusDone) {
		return nil, transitionError(exec.Status, entity.ExecutionStatusDone)
	}

	if input.ActualCost != nil && input.ActualCost.IsNegative() {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeNegativeCost,
			"actual cost must not be negative",
			domainerror.ErrNegativeCost,
		)
	}
	if input.QuantityPurchased != nil && *input.QuantityPurchased < 1 {
		return nil, domainerror.NewExecutionError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity purchased must be at least 1",
			domainerror.ErrInvalidQuantity,
		)
	}

	now := time.Now().UTC()
	executionDate := now
	if input.ExecutionDate != nil {
		executionDate = *input.ExecutionDate
	}

	exec.Status = entity.ExecutionStatusDone
	exec.ExecutionDate = &executionDate
	if input.ActualCost != nil {
		exec.ActualCost = input.ActualCost
	}
	if input.QuantityPurchased != nil {
		exec.QuantityPurchased = *input.QuantityPurchased
	}
	if input.QuantityUnit != nil {
		exec.QuantityUnit = *input.QuantityUnit
	}
	if input.Notes != nil {
		exec.Notes = *input.Notes
	}
	exec.UpdatedAt = now

	if err := uc.executionRepo.Update(ctx, exec); err != nil {
		return nil, fmt.Errorf("failed to update execution: %w", err)
	}

	// Completing an execution changes actual spend; re-check budget alerts
	// best-effort so the completion itself never fails on alerting.
	if uc.alertChecker != nil {
		if err := uc.alertChecker.CheckCategory(ctx, input.UserID, task.ClientID, task.CategoryID); err != nil {
			slog.Warn("Budget alert check failed", "error", err, "categoryID", task.CategoryID)
		}
	}

	return &MarkDoneOutput{Execution: exec}, nil
}
