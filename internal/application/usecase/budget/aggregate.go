// Package budget computes budget breakdowns, projections, and alerts.
package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// SubcategoryBreakdown is the derived budget state of one subcategory.
type SubcategoryBreakdown struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	AnnualBudget decimal.Decimal `json:"annualBudget"`
	ActualSpent  decimal.Decimal `json:"actualSpent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Utilization  int64           `json:"utilization"`
}

// CategoryBreakdown is the derived budget state of one category, including
// the rollup of its subcategories.
type CategoryBreakdown struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Color         string                 `json:"color"`
	AnnualBudget  decimal.Decimal        `json:"annualBudget"`
	ActualSpent   decimal.Decimal        `json:"actualSpent"`
	Remaining     decimal.Decimal        `json:"remaining"`
	Utilization   int64                  `json:"utilization"`
	Subcategories []SubcategoryBreakdown `json:"subcategories"`
}

// Aggregate folds spend records into per-category and per-subcategory
// breakdowns. Categories and subcategories preserve input order. The fold is
// pure: same input always yields identical output.
func Aggregate(categories []*entity.CareCategory, spend []SpendRecord) []CategoryBreakdown {
	// Index spend once for O(1) lookups instead of per-category scans.
	byCategory := make(map[uuid.UUID]decimal.Decimal, len(categories))
	bySubcategory := make(map[uuid.UUID]decimal.Decimal)
	for _, record := range spend {
		byCategory[record.CategoryID] = byCategory[record.CategoryID].Add(record.Amount)
		if record.SubcategoryID != nil {
			bySubcategory[*record.SubcategoryID] = bySubcategory[*record.SubcategoryID].Add(record.Amount)
		}
	}

	breakdown := make([]CategoryBreakdown, 0, len(categories))
	for _, category := range categories {
		spent := byCategory[category.ID]

		subs := make([]SubcategoryBreakdown, 0, len(category.Subcategories))
		for _, sub := range category.Subcategories {
			subSpent := bySubcategory[sub.ID]
			subs = append(subs, SubcategoryBreakdown{
				ID:           sub.ID,
				Name:         sub.Name,
				AnnualBudget: sub.AnnualBudget,
				ActualSpent:  subSpent,
				Remaining:    remaining(sub.AnnualBudget, subSpent),
				Utilization:  utilization(sub.AnnualBudget, subSpent),
			})
		}

		breakdown = append(breakdown, CategoryBreakdown{
			ID:            category.ID,
			Name:          category.Name,
			Color:         category.Color,
			AnnualBudget:  category.AnnualBudget,
			ActualSpent:   spent,
			Remaining:     remaining(category.AnnualBudget, spent),
			Utilization:   utilization(category.AnnualBudget, spent),
			Subcategories: subs,
		})
	}

	return breakdown
}

// remaining is budget minus spend, clamped at zero.
func remaining(budget, spent decimal.Decimal) decimal.Decimal {
	r := budget.Sub(spent)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// utilization is round(spent/budget*100); zero-budget buckets report 0.
// Overspent buckets exceed 100, they are never clamped.
func utilization(budget, spent decimal.Decimal) int64 {
	if !budget.IsPositive() {
		return 0
	}
	return spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
