// Package valueobject defines immutable domain value types.
package valueobject

import (
	"time"

	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// DateWindow is an inclusive date range that task dates must fall within.
// Care tasks are scoped to a single budgeting year; cross-year recurring
// tasks are unsupported.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// ActiveYearWindow returns the window for the calendar year containing now:
// Jan 1 00:00:00 through Dec 31 23:59:59 UTC.
func ActiveYearWindow(now time.Time) DateWindow {
	year := now.UTC().Year()
	return DateWindow{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}

// Contains reports whether the date falls inside the window.
func (w DateWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Clamp forces the date into the window: dates before the start become the
// start, dates after the end become the end. Clamping is idempotent.
func (w DateWindow) Clamp(d time.Time) time.Time {
	if d.Before(w.Start) {
		return w.Start
	}
	if d.After(w.End) {
		return w.End
	}
	return d
}

// ValidateStart fails when the candidate start date is outside the window.
func (w DateWindow) ValidateStart(d time.Time) error {
	if !w.Contains(d) {
		return domainerror.ErrDateOutOfYear
	}
	return nil
}

// ValidateEnd fails when the candidate end date is outside the window or
// precedes the start date.
func (w DateWindow) ValidateEnd(d, start time.Time) error {
	if !w.Contains(d) {
		return domainerror.ErrDateOutOfYear
	}
	if d.Before(start) {
		return domainerror.ErrEndBeforeStart
	}
	return nil
}
