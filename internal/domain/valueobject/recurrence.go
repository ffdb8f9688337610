// Package valueobject defines immutable domain value types.
package valueobject

import (
	"fmt"
	"time"

	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// Recurrence encodes how often a care task repeats, as a fixed number of
// days between occurrences. An interval of zero means the task is one-off.
type Recurrence struct {
	IntervalDays int
}

// NewRecurrence validates and constructs a Recurrence.
func NewRecurrence(intervalDays int) (Recurrence, error) {
	if intervalDays < 0 {
		return Recurrence{}, domainerror.ErrInvalidRecurrenceInterval
	}
	return Recurrence{IntervalDays: intervalDays}, nil
}

// IsOneOff reports whether the recurrence generates no further occurrences.
func (r Recurrence) IsOneOff() bool {
	return r.IntervalDays == 0
}

// Describe returns a human-readable label for the recurrence interval.
// The 30-day label is approximate, not calendar-month-aware.
func (r Recurrence) Describe() string {
	switch r.IntervalDays {
	case 0:
		return "One-off"
	case 1:
		return "Daily"
	case 7:
		return "Weekly"
	case 14:
		return "Fortnightly"
	case 30:
		return "Monthly"
	case 90:
		return "Quarterly"
	case 365:
		return "Yearly"
	default:
		return fmt.Sprintf("Every %d days", r.IntervalDays)
	}
}

// Next returns the occurrence following from, or false for one-off tasks.
func (r Recurrence) Next(from time.Time) (time.Time, bool) {
	if r.IsOneOff() {
		return time.Time{}, false
	}
	return from.AddDate(0, 0, r.IntervalDays), true
}

// OccurrencesBetween enumerates the occurrence dates from start through end
// inclusive. A one-off recurrence yields only the start date (when it falls
// within the range).
func (r Recurrence) OccurrencesBetween(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	if r.IsOneOff() {
		return []time.Time{start}
	}

	var occurrences []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, r.IntervalDays) {
		occurrences = append(occurrences, d)
	}
	return occurrences
}
