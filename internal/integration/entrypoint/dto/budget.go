// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/application/usecase/budget"
)

// BreakdownResponse represents the per-category budget breakdown for a client.
// CategoryBreakdown and SubcategoryBreakdown already carry JSON tags, so they
// are exposed directly.
type BreakdownResponse struct {
	Breakdown []budget.CategoryBreakdown `json:"breakdown"`
	FromCache bool                       `json:"from_cache"`
}

// ProjectionResponse represents the year-end spend projection for a client.
type ProjectionResponse struct {
	Projection  budget.Projection `json:"projection"`
	TotalSpend  decimal.Decimal   `json:"total_spend"`
	TotalBudget decimal.Decimal   `json:"total_budget"`
}

// AlertsResponse represents active budget alerts for a client.
type AlertsResponse struct {
	Alerts []budget.CategoryAlert `json:"alerts"`
}
