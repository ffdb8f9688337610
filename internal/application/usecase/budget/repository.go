// Package budget computes budget breakdowns, projections, and alerts.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// SpendRecord is one DONE execution's cost joined to its task's budget
// buckets. Rows without an actual cost are never produced.
type SpendRecord struct {
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Amount        decimal.Decimal
}

// Repository defines the read operations budget computation needs.
type Repository interface {
	// FindCategoriesByClientID retrieves the client's categories with
	// subcategories, ordered by display order.
	FindCategoriesByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.CareCategory, error)

	// FindSpendByClientID retrieves one SpendRecord per DONE execution with
	// a recorded cost, across all of the client's care tasks.
	FindSpendByClientID(ctx context.Context, clientID uuid.UUID) ([]SpendRecord, error)

	// FindSpendByCategoryID retrieves spend records scoped to one category.
	FindSpendByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]SpendRecord, error)
}

// BreakdownCache caches computed breakdowns per client. Implementations are
// expected to be shared (Redis), so entries carry a TTL.
type BreakdownCache interface {
	// Get returns the cached breakdown for the client, if present.
	Get(ctx context.Context, clientID uuid.UUID) ([]CategoryBreakdown, bool, error)

	// Set stores the breakdown for the client with the given TTL.
	Set(ctx context.Context, clientID uuid.UUID, breakdown []CategoryBreakdown, ttl time.Duration) error

	// Invalidate drops the cached breakdown for the client.
	Invalidate(ctx context.Context, clientID uuid.UUID) error
}
