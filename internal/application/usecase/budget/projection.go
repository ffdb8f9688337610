// Package budget computes budget breakdowns, projections, and alerts.
package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// Projection is a year-end spend estimate extrapolated from the spend rate
// over elapsed days.
type Projection struct {
	DaysElapsed        int             `json:"daysElapsed"`
	TotalDays          int             `json:"totalDays"`
	DaysRemaining      int             `json:"daysRemaining"`
	DailyRate          decimal.Decimal `json:"dailyRate"`
	ProjectedRemaining decimal.Decimal `json:"projectedRemaining"`
	ProjectedTotal     decimal.Decimal `json:"projectedTotal"`
	Overage            decimal.Decimal `json:"overage"`
}

// Project extrapolates year-end spend from the daily rate observed so far.
// When the year just started (zero days elapsed) the rate is zero and the
// projection equals current spend.
func Project(yearStart, yearEnd, now time.Time, totalSpend, totalBudget decimal.Decimal) Projection {
	daysElapsed := int(now.Sub(yearStart).Hours() / 24)
	if daysElapsed < 0 {
		daysElapsed = 0
	}

	totalDays := int(yearEnd.Sub(yearStart).Hours() / 24)
	if totalDays < 1 {
		totalDays = 1
	}

	daysRemaining := totalDays - daysElapsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	dailyRate := decimal.Zero
	if daysElapsed > 0 {
		dailyRate = totalSpend.Div(decimal.NewFromInt(int64(daysElapsed)))
	}

	projectedRemaining := dailyRate.Mul(decimal.NewFromInt(int64(daysRemaining)))
	projectedTotal := totalSpend.Add(projectedRemaining)

	overage := projectedTotal.Sub(totalBudget)
	if overage.IsNegative() {
		overage = decimal.Zero
	}

	return Projection{
		DaysElapsed:        daysElapsed,
		TotalDays:          totalDays,
		DaysRemaining:      daysRemaining,
		DailyRate:          dailyRate,
		ProjectedRemaining: projectedRemaining,
		ProjectedTotal:     projectedTotal,
		Overage:            overage,
	}
}
