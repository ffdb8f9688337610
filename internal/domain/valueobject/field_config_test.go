package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

func TestExecutionFieldConfigCreate(t *testing.T) {
	cfg, err := ExecutionFieldConfig(FieldModeCreate, entity.ExecutionStatusTodo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Editable(FieldScheduledDate) {
		t.Error("scheduled_date should be editable on create")
	}
	if !cfg.Editable(FieldNotes) {
		t.Error("notes should be editable on create")
	}
	if cfg.Editable(FieldStatus) {
		t.Error("status should not be editable on create")
	}
	if cfg[FieldActualCost].Visible {
		t.Error("actual_cost should be hidden on create")
	}
	if cfg[FieldRefundAmount].Visible {
		t.Error("refund fields should be hidden on create")
	}
}

func TestExecutionFieldConfigEdit(t *testing.T) {
	tests := []struct {
		name     string
		status   entity.ExecutionStatus
		editable []string
		hidden   []string
		readOnly []string
	}{
		{
			name:     "todo allows rescheduling",
			status:   entity.ExecutionStatusTodo,
			editable: []string{FieldScheduledDate, FieldStatus, FieldNotes},
			hidden:   []string{FieldExecutionDate, FieldQuantityPurchased, FieldActualCost, FieldRefundAmount},
		},
		{
			name:     "done allows cost corrections",
			status:   entity.ExecutionStatusDone,
			editable: []string{FieldActualCost, FieldNotes, FieldStatus},
			hidden:   []string{FieldRefundAmount, FieldRefundDate},
			readOnly: []string{FieldScheduledDate, FieldExecutionDate, FieldQuantityPurchased, FieldQuantityUnit},
		},
		{
			name:     "cancelled is frozen",
			status:   entity.ExecutionStatusCancelled,
			hidden:   []string{FieldExecutionDate, FieldActualCost, FieldRefundAmount},
			readOnly: []string{FieldScheduledDate, FieldStatus, FieldNotes},
		},
		{
			name:     "refunded keeps refund amount editable",
			status:   entity.ExecutionStatusRefunded,
			editable: []string{FieldRefundAmount},
			readOnly: []string{FieldScheduledDate, FieldStatus, FieldActualCost, FieldRefundDate, FieldRefundReason},
		},
		{
			name:     "partially refunded keeps refund amount editable",
			status:   entity.ExecutionStatusPartiallyRefunded,
			editable: []string{FieldRefundAmount},
			readOnly: []string{FieldStatus, FieldActualCost},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ExecutionFieldConfig(FieldModeEdit, tt.status)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, f := range tt.editable {
				if !cfg.Editable(f) {
					t.Errorf("field %s should be editable", f)
				}
			}
			for _, f := range tt.hidden {
				if cfg[f].Visible {
					t.Errorf("field %s should be hidden", f)
				}
			}
			for _, f := range tt.readOnly {
				v := cfg[f]
				if !v.Visible || v.Editable {
					t.Errorf("field %s should be visible but read-only, got %+v", f, v)
				}
			}
		})
	}
}

func TestExecutionFieldConfigUnknownStatus(t *testing.T) {
	_, err := ExecutionFieldConfig(FieldModeEdit, entity.ExecutionStatus("ARCHIVED"))
	if !errors.Is(err, domainerror.ErrInvalidExecutionStatus) {
		t.Errorf("expected ErrInvalidExecutionStatus, got %v", err)
	}
}

func TestAlertThresholdsValidate(t *testing.T) {
	if err := DefaultAlertThresholds().Validate(); err != nil {
		t.Fatalf("default thresholds should validate: %v", err)
	}

	tests := []struct {
		name     string
		warning  float64
		critical float64
		valid    bool
	}{
		{name: "defaults", warning: 0.80, critical: 0.95, valid: true},
		{name: "equal thresholds", warning: 0.9, critical: 0.9, valid: true},
		{name: "critical at one", warning: 0.5, critical: 1.0, valid: true},
		{name: "zero warning", warning: 0, critical: 0.95, valid: false},
		{name: "critical above one", warning: 0.8, critical: 1.01, valid: false},
		{name: "critical below warning", warning: 0.9, critical: 0.8, valid: false},
		{name: "negative warning", warning: -0.1, critical: 0.95, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := AlertThresholds{
				Warning:  decimal.NewFromFloat(tt.warning),
				Critical: decimal.NewFromFloat(tt.critical),
			}
			err := th.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, domainerror.ErrInvalidThresholds) {
				t.Errorf("expected ErrInvalidThresholds, got %v", err)
			}
		})
	}
}
