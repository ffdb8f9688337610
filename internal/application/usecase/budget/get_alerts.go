// Package budget computes budget breakdowns, projections, and alerts.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// CategoryAlert pairs a category with its evaluated alert status.
type CategoryAlert struct {
	CategoryID   uuid.UUID   `json:"categoryId"`
	CategoryName string      `json:"categoryName"`
	Alert        AlertStatus `json:"alert"`
}

// GetAlertsInput represents the input for evaluating budget alerts.
type GetAlertsInput struct {
	UserID   uuid.UUID
	ClientID uuid.UUID
}

// GetAlertsOutput represents the output of evaluating budget alerts.
type GetAlertsOutput struct {
	Alerts []CategoryAlert
}

// GetAlertsUseCase evaluates every category of a client against the alert
// thresholds.
type GetAlertsUseCase struct {
	repo       Repository
	clientRepo adapter.ClientRepository
	thresholds valueobject.AlertThresholds
}

// NewGetAlertsUseCase creates a new GetAlertsUseCase instance.
func NewGetAlertsUseCase(repo Repository, clientRepo adapter.ClientRepository, thresholds valueobject.AlertThresholds) (*GetAlertsUseCase, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidThresholds,
			"alert thresholds must satisfy 0 < warning <= critical <= 1",
			err,
		)
	}
	return &GetAlertsUseCase{
		repo:       repo,
		clientRepo: clientRepo,
		thresholds: thresholds,
	}, nil
}

// Execute evaluates alerts for every category after checking ownership.
func (uc *GetAlertsUseCase) Execute(ctx context.Context, input GetAlertsInput) (*GetAlertsOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}
	if client.UserID != input.UserID {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeNotAuthorizedClient,
			"not authorized to access this client",
			domainerror.ErrNotAuthorizedForClient,
		)
	}

	categories, err := uc.repo.FindCategoriesByClientID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	spend, err := uc.repo.FindSpendByClientID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load spend records: %w", err)
	}

	breakdown := Aggregate(categories, spend)

	alerts := make([]CategoryAlert, 0, len(breakdown))
	for _, category := range breakdown {
		alerts = append(alerts, CategoryAlert{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			Alert:        Evaluate(category.ActualSpent, category.AnnualBudget, uc.thresholds),
		})
	}

	return &GetAlertsOutput{Alerts: alerts}, nil
}
