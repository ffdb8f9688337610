package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

func TestNewRecurrence(t *testing.T) {
	tests := []struct {
		name         string
		intervalDays int
		expectErr    error
	}{
		{name: "one-off", intervalDays: 0},
		{name: "daily", intervalDays: 1},
		{name: "arbitrary interval", intervalDays: 42},
		{name: "negative interval", intervalDays: -1, expectErr: domainerror.ErrInvalidRecurrenceInterval},
		{name: "large negative interval", intervalDays: -365, expectErr: domainerror.ErrInvalidRecurrenceInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecurrence(tt.intervalDays)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected error %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.IntervalDays != tt.intervalDays {
				t.Errorf("expected interval %d, got %d", tt.intervalDays, r.IntervalDays)
			}
		})
	}
}

func TestRecurrenceDescribe(t *testing.T) {
	tests := []struct {
		intervalDays int
		expected     string
	}{
		{0, "One-off"},
		{1, "Daily"},
		{7, "Weekly"},
		{14, "Fortnightly"},
		{30, "Monthly"},
		{90, "Quarterly"},
		{365, "Yearly"},
		{3, "Every 3 days"},
		{45, "Every 45 days"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			r := Recurrence{IntervalDays: tt.intervalDays}
			if got := r.Describe(); got != tt.expected {
				t.Errorf("Describe(%d) = %q, expected %q", tt.intervalDays, got, tt.expected)
			}
		})
	}
}

func TestRecurrenceNext(t *testing.T) {
	from := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("one-off has no next occurrence", func(t *testing.T) {
		r := Recurrence{IntervalDays: 0}
		if _, ok := r.Next(from); ok {
			t.Error("expected no next occurrence for one-off recurrence")
		}
	})

	t.Run("weekly advances seven days", func(t *testing.T) {
		r := Recurrence{IntervalDays: 7}
		next, ok := r.Next(from)
		if !ok {
			t.Fatal("expected a next occurrence")
		}
		expected := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)
		if !next.Equal(expected) {
			t.Errorf("expected %v, got %v", expected, next)
		}
	})
}

func TestRecurrenceOccurrencesBetween(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		intervalDays int
		end          time.Time
		expectCount  int
	}{
		{name: "one-off yields only start", intervalDays: 0, end: start.AddDate(0, 0, 30), expectCount: 1},
		{name: "weekly over four weeks", intervalDays: 7, end: start.AddDate(0, 0, 28), expectCount: 5},
		{name: "daily over one week", intervalDays: 1, end: start.AddDate(0, 0, 6), expectCount: 7},
		{name: "interval longer than range", intervalDays: 90, end: start.AddDate(0, 0, 30), expectCount: 1},
		{name: "end before start", intervalDays: 7, end: start.AddDate(0, 0, -1), expectCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Recurrence{IntervalDays: tt.intervalDays}
			occurrences := r.OccurrencesBetween(start, tt.end)
			if len(occurrences) != tt.expectCount {
				t.Fatalf("expected %d occurrences, got %d", tt.expectCount, len(occurrences))
			}
			if tt.expectCount > 0 && !occurrences[0].Equal(start) {
				t.Errorf("first occurrence should equal start, got %v", occurrences[0])
			}
		})
	}
}
