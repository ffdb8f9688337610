package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

func TestActiveYearWindow(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 30, 0, 0, time.UTC)
	w := ActiveYearWindow(now)

	expectedStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)

	if !w.Start.Equal(expectedStart) {
		t.Errorf("expected start %v, got %v", expectedStart, w.Start)
	}
	if !w.End.Equal(expectedEnd) {
		t.Errorf("expected end %v, got %v", expectedEnd, w.End)
	}
}

func TestDateWindowClamp(t *testing.T) {
	w := ActiveYearWindow(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			name:     "before window clamps to start",
			date:     time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC),
			expected: w.Start,
		},
		{
			name:     "after window clamps to end",
			date:     time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
			expected: w.End,
		},
		{
			name:     "inside window unchanged",
			date:     time.Date(2025, time.August, 9, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.August, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Clamp(tt.date)
			if !got.Equal(tt.expected) {
				t.Errorf("Clamp(%v) = %v, expected %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestDateWindowClampIsIdempotent(t *testing.T) {
	w := ActiveYearWindow(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	dates := []time.Time{
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2027, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	for _, d := range dates {
		once := w.Clamp(d)
		twice := w.Clamp(once)
		if !once.Equal(twice) {
			t.Errorf("Clamp not idempotent for %v: %v != %v", d, once, twice)
		}
	}
}

func TestDateWindowValidateStart(t *testing.T) {
	w := ActiveYearWindow(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	if err := w.ValidateStart(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Errorf("unexpected error for in-year date: %v", err)
	}

	err := w.ValidateStart(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, domainerror.ErrDateOutOfYear) {
		t.Errorf("expected ErrDateOutOfYear, got %v", err)
	}
}

func TestDateWindowValidateEnd(t *testing.T) {
	w := ActiveYearWindow(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	start := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		end       time.Time
		expectErr error
	}{
		{
			name: "valid end after start",
			end:  time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "end equals start",
			end:  start,
		},
		{
			name:      "end outside year",
			end:       time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
			expectErr: domainerror.ErrDateOutOfYear,
		},
		{
			name:      "end before start",
			end:       time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			expectErr: domainerror.ErrEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.ValidateEnd(tt.end, start)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
