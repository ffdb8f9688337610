// Package budget computes budget breakdowns, projections, and alerts.
package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// AlertLevel classifies budget utilization.
type AlertLevel string

const (
	AlertLevelNone     AlertLevel = "none"
	AlertLevelGood     AlertLevel = "good"
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelCritical AlertLevel = "critical"
)

// Presentation colors per alert level.
const (
	colorNone     = "#9CA3AF"
	colorGood     = "#10B981"
	colorWarning  = "#F59E0B"
	colorCritical = "#EF4444"
)

// AlertStatus is the evaluated alert for one budget bucket.
type AlertStatus struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
	Color   string     `json:"color"`
}

// Evaluate classifies spend against budget using the given thresholds.
// A zero budget never alerts.
func Evaluate(spend, budget decimal.Decimal, thresholds valueobject.AlertThresholds) AlertStatus {
	if !budget.IsPositive() {
		return AlertStatus{
			Level:   AlertLevelNone,
			Message: "No budget set",
			Color:   colorNone,
		}
	}

	ratio := spend.Div(budget)
	percent := ratio.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	switch {
	case ratio.GreaterThanOrEqual(thresholds.Critical):
		return AlertStatus{
			Level:   AlertLevelCritical,
			Message: fmt.Sprintf("Budget critically low: %d%% used", percent),
			Color:   colorCritical,
		}
	case ratio.GreaterThanOrEqual(thresholds.Warning):
		return AlertStatus{
			Level:   AlertLevelWarning,
			Message: fmt.Sprintf("Budget running low: %d%% used", percent),
			Color:   colorWarning,
		}
	default:
		return AlertStatus{
			Level:   AlertLevelGood,
			Message: fmt.Sprintf("Budget on track: %d%% used", percent),
			Color:   colorGood,
		}
	}
}
