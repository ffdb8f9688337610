package budget

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

func TestEvaluate(t *testing.T) {
	thresholds := valueobject.DefaultAlertThresholds()

	tests := []struct {
		name     string
		spend    int64
		budget   int64
		expected AlertLevel
	}{
		{name: "zero budget never alerts", spend: 50, budget: 0, expected: AlertLevelNone},
		{name: "low utilization is good", spend: 10, budget: 100, expected: AlertLevelGood},
		{name: "just below warning", spend: 79, budget: 100, expected: AlertLevelGood},
		{name: "at warning threshold", spend: 80, budget: 100, expected: AlertLevelWarning},
		{name: "between warning and critical", spend: 90, budget: 100, expected: AlertLevelWarning},
		{name: "at ninety-six percent", spend: 96, budget: 100, expected: AlertLevelCritical},
		{name: "at critical threshold", spend: 95, budget: 100, expected: AlertLevelCritical},
		{name: "overspent", spend: 150, budget: 100, expected: AlertLevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Evaluate(decimal.NewFromInt(tt.spend), decimal.NewFromInt(tt.budget), thresholds)
			if status.Level != tt.expected {
				t.Errorf("Evaluate(%d, %d) = %s, expected %s", tt.spend, tt.budget, status.Level, tt.expected)
			}
			if status.Message == "" || status.Color == "" {
				t.Error("alert status must carry a message and a color")
			}
		})
	}
}

func TestEvaluateCustomThresholds(t *testing.T) {
	thresholds := valueobject.AlertThresholds{
		Warning:  decimal.RequireFromString("0.5"),
		Critical: decimal.RequireFromString("0.75"),
	}

	status := Evaluate(decimal.NewFromInt(60), decimal.NewFromInt(100), thresholds)
	if status.Level != AlertLevelWarning {
		t.Errorf("expected warning at 60%% with 0.5 threshold, got %s", status.Level)
	}

	status = Evaluate(decimal.NewFromInt(80), decimal.NewFromInt(100), thresholds)
	if status.Level != AlertLevelCritical {
		t.Errorf("expected critical at 80%% with 0.75 threshold, got %s", status.Level)
	}
}
