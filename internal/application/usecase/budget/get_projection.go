// Package budget computes budget breakdowns, projections, and alerts.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// GetProjectionInput represents the input for fetching a spend projection.
type GetProjectionInput struct {
	UserID   uuid.UUID
	ClientID uuid.UUID
}

// GetProjectionOutput represents the output of fetching a spend projection.
type GetProjectionOutput struct {
	Projection  Projection
	TotalSpend  decimal.Decimal
	TotalBudget decimal.Decimal
}

// GetProjectionUseCase extrapolates the client's year-end spend across all
// categories from the active-year daily rate.
type GetProjectionUseCase struct {
	repo       Repository
	clientRepo adapter.ClientRepository
	now        func() time.Time
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase instance.
func NewGetProjectionUseCase(repo Repository, clientRepo adapter.ClientRepository) *GetProjectionUseCase {
	return &GetProjectionUseCase{
		repo:       repo,
		clientRepo: clientRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Intended for tests.
func (uc *GetProjectionUseCase) WithClock(now func() time.Time) *GetProjectionUseCase {
	uc.now = now
	return uc
}

// Execute computes the projection after checking ownership.
func (uc *GetProjectionUseCase) Execute(ctx context.Context, input GetProjectionInput) (*GetProjectionOutput, error) {
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

	totalBudget := decimal.Zero
	for _, category := range categories {
		totalBudget = totalBudget.Add(category.AnnualBudget)
	}
	totalSpend := decimal.Zero
	for _, record := range spend {
		totalSpend = totalSpend.Add(record.Amount)
	}

	now := uc.now()
	window := valueobject.ActiveYearWindow(now)
	projection := Project(window.Start, window.End, now, totalSpend, totalBudget)

	return &GetProjectionOutput{
		Projection:  projection,
		TotalSpend:  totalSpend,
		TotalBudget: totalBudget,
	}, nil
}
