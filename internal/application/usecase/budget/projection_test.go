package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestProjectMidYear(t *testing.T) {
	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	p := Project(yearStart, yearEnd, now, decimal.NewFromInt(3000), decimal.NewFromInt(4200))

	if p.DaysElapsed != 181 {
		t.Errorf("daysElapsed = %d, expected 181", p.DaysElapsed)
	}
	// Jan 1 00:00:00 to Dec 31 23:59:59 is one second short of 365 days, and
	// TotalDays floors, so 364 is correct here.
	if p.TotalDays != 364 {
		t.Errorf("totalDays = %d, expected 364", p.TotalDays)
	}
	if p.DaysRemaining != 183 {
		t.Errorf("daysRemaining = %d, expected 183", p.DaysRemaining)
	}

	// dailyRate = 3000/181 ~ 16.57
	expectedRate := decimal.NewFromInt(3000).Div(decimal.NewFromInt(181))
	if !p.DailyRate.Equal(expectedRate) {
		t.Errorf("dailyRate = %s, expected %s", p.DailyRate, expectedRate)
	}

	// projectedTotal = 3000 + rate*183 ~ 6033; overage ~ 1833
	expectedTotal := decimal.NewFromInt(3000).Add(expectedRate.Mul(decimal.NewFromInt(183)))
	if !p.ProjectedTotal.Equal(expectedTotal) {
		t.Errorf("projectedTotal = %s, expected %s", p.ProjectedTotal, expectedTotal)
	}
	if p.ProjectedTotal.LessThan(decimal.NewFromInt(6000)) || p.ProjectedTotal.GreaterThan(decimal.NewFromInt(6100)) {
		t.Errorf("projectedTotal = %s, expected roughly 6030", p.ProjectedTotal)
	}

	expectedOverage := expectedTotal.Sub(decimal.NewFromInt(4200))
	if !p.Overage.Equal(expectedOverage) {
		t.Errorf("overage = %s, expected %s", p.Overage, expectedOverage)
	}
}

func TestProjectYearJustStarted(t *testing.T) {
	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	now := yearStart

	p := Project(yearStart, yearEnd, now, decimal.NewFromInt(500), decimal.NewFromInt(1000))

	if p.DaysElapsed != 0 {
		t.Errorf("daysElapsed = %d, expected 0", p.DaysElapsed)
	}
	if !p.DailyRate.Equal(decimal.Zero) {
		t.Errorf("dailyRate = %s, expected 0 when year just started", p.DailyRate)
	}
	if !p.ProjectedTotal.Equal(decimal.NewFromInt(500)) {
		t.Errorf("projectedTotal = %s, expected current spend 500", p.ProjectedTotal)
	}
	if !p.Overage.Equal(decimal.Zero) {
		t.Errorf("overage = %s, expected 0", p.Overage)
	}
}

func TestProjectUnderBudgetHasNoOverage(t *testing.T) {
	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	now := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	p := Project(yearStart, yearEnd, now, decimal.NewFromInt(100), decimal.NewFromInt(10000))

	if !p.Overage.Equal(decimal.Zero) {
		t.Errorf("overage = %s, expected 0 when under budget", p.Overage)
	}
}

func TestProjectAfterYearEnd(t *testing.T) {
	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	p := Project(yearStart, yearEnd, now, decimal.NewFromInt(5000), decimal.NewFromInt(4000))

	if p.DaysRemaining != 0 {
		t.Errorf("daysRemaining = %d, expected 0 after year end", p.DaysRemaining)
	}
	if !p.ProjectedTotal.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("projectedTotal = %s, expected spend to date", p.ProjectedTotal)
	}
	if !p.Overage.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("overage = %s, expected 1000", p.Overage)
	}
}
