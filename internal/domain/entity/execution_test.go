package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewExecutionDefaults(t *testing.T) {
	taskID := uuid.New()
	scheduled := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	e := NewExecution(taskID, scheduled)

	if e.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if e.CareTaskID != taskID {
		t.Errorf("expected task ID %s, got %s", taskID, e.CareTaskID)
	}
	if e.Status != ExecutionStatusTodo {
		t.Errorf("expected status TODO, got %s", e.Status)
	}
	if e.QuantityPurchased != 1 {
		t.Errorf("expected default quantity 1, got %d", e.QuantityPurchased)
	}
	if e.ExecutionDate != nil {
		t.Error("expected no execution date on a fresh execution")
	}
}

func TestExecutionCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    ExecutionStatus
		to      ExecutionStatus
		allowed bool
	}{
		{ExecutionStatusTodo, ExecutionStatusDone, true},
		{ExecutionStatusTodo, ExecutionStatusCancelled, true},
		{ExecutionStatusTodo, ExecutionStatusRefunded, false},
		{ExecutionStatusTodo, ExecutionStatusPartiallyRefunded, false},
		{ExecutionStatusTodo, ExecutionStatusTodo, false},
		{ExecutionStatusDone, ExecutionStatusRefunded, true},
		{ExecutionStatusDone, ExecutionStatusPartiallyRefunded, true},
		{ExecutionStatusDone, ExecutionStatusTodo, false},
		{ExecutionStatusDone, ExecutionStatusCancelled, false},
		{ExecutionStatusCancelled, ExecutionStatusTodo, false},
		{ExecutionStatusCancelled, ExecutionStatusDone, false},
		{ExecutionStatusRefunded, ExecutionStatusDone, false},
		{ExecutionStatusRefunded, ExecutionStatusPartiallyRefunded, false},
		{ExecutionStatusPartiallyRefunded, ExecutionStatusRefunded, false},
	}

	for _, tt := range tests {
		name := string(tt.from) + " to " + string(tt.to)
		t.Run(name, func(t *testing.T) {
			e := Execution{Status: tt.from}
			if got := e.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, expected %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestExecutionIsTerminal(t *testing.T) {
	tests := []struct {
		status   ExecutionStatus
		terminal bool
	}{
		{ExecutionStatusTodo, false},
		{ExecutionStatusDone, false},
		{ExecutionStatusCancelled, true},
		{ExecutionStatusRefunded, true},
		{ExecutionStatusPartiallyRefunded, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			e := Execution{Status: tt.status}
			if got := e.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal(%s) = %v, expected %v", tt.status, got, tt.terminal)
			}
		})
	}
}

func TestIsValidExecutionStatus(t *testing.T) {
	for _, s := range []ExecutionStatus{
		ExecutionStatusTodo,
		ExecutionStatusDone,
		ExecutionStatusCancelled,
		ExecutionStatusRefunded,
		ExecutionStatusPartiallyRefunded,
	} {
		if !IsValidExecutionStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if IsValidExecutionStatus("PENDING") {
		t.Error("expected PENDING to be invalid")
	}
}

func TestIsRefundStatus(t *testing.T) {
	if !IsRefundStatus(ExecutionStatusRefunded) || !IsRefundStatus(ExecutionStatusPartiallyRefunded) {
		t.Error("refund statuses should report true")
	}
	if IsRefundStatus(ExecutionStatusDone) || IsRefundStatus(ExecutionStatusTodo) {
		t.Error("non-refund statuses should report false")
	}
}
