// Package valueobject defines immutable domain value types.
package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// AlertThresholds holds the utilization ratios at which budget alerts fire.
// Both values are fractions in (0, 1], with critical >= warning.
type AlertThresholds struct {
	Warning  decimal.Decimal
	Critical decimal.Decimal
}

// DefaultAlertThresholds returns the standard 80%/95% bands.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		Warning:  decimal.NewFromFloat(0.80),
		Critical: decimal.NewFromFloat(0.95),
	}
}

// Validate checks the threshold invariants.
func (t AlertThresholds) Validate() error {
	one := decimal.NewFromInt(1)
	if t.Warning.LessThanOrEqual(decimal.Zero) || t.Warning.GreaterThan(one) {
		return domainerror.ErrInvalidThresholds
	}
	if t.Critical.LessThanOrEqual(decimal.Zero) || t.Critical.GreaterThan(one) {
		return domainerror.ErrInvalidThresholds
	}
	if t.Critical.LessThan(t.Warning) {
		return domainerror.ErrInvalidThresholds
	}
	return nil
}
