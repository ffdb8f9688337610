// Package budget computes budget breakdowns, projections, and alerts.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// BreakdownCacheTTL bounds staleness of cached breakdowns. Spend-changing
// operations invalidate eagerly; the TTL is a backstop.
const BreakdownCacheTTL = 5 * time.Minute

// GetBreakdownInput represents the input for fetching a budget breakdown.
type GetBreakdownInput struct {
	UserID   uuid.UUID
	ClientID uuid.UUID
}

// GetBreakdownOutput represents the output of fetching a budget breakdown.
type GetBreakdownOutput struct {
	Breakdown []CategoryBreakdown
	FromCache bool
}

// GetBreakdownUseCase computes the per-category budget breakdown for a
// client, with a shared cache in front of the aggregation.
type GetBreakdownUseCase struct {
	repo       Repository
	cache      BreakdownCache
	clientRepo adapter.ClientRepository
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
// cache may be nil; aggregation then runs on every call.
func NewGetBreakdownUseCase(repo Repository, cache BreakdownCache, clientRepo adapter.ClientRepository) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{
		repo:       repo,
		cache:      cache,
		clientRepo: clientRepo,
	}
}

// Execute returns the breakdown after checking ownership.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, input GetBreakdownInput) (*GetBreakdownOutput, error) {
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

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, input.ClientID)
		if err != nil {
			// Cache trouble degrades to recomputation, never to failure.
			slog.Warn("Breakdown cache read failed", "error", err, "clientID", input.ClientID)
		} else if ok {
			return &GetBreakdownOutput{Breakdown: cached, FromCache: true}, nil
		}
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

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.ClientID, breakdown, BreakdownCacheTTL); err != nil {
			slog.Warn("Breakdown cache write failed", "error", err, "clientID", input.ClientID)
		}
	}

	return &GetBreakdownOutput{Breakdown: breakdown}, nil
}
