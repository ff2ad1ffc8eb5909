package models

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for display and input.
const DateLayout = "2006-01-02"

// Day is the length of one calendar day.
const Day = 24 * time.Hour

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// DateRange is an inclusive [Start, End] interval of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two instants, truncating both to calendar dates.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: DateOf(start), End: DateOf(end)}
}

// IsEmpty returns true if the range is inverted and therefore matches nothing.
func (r DateRange) IsEmpty() bool {
	return r.Start.After(r.End)
}

// Contains reports whether t's calendar date lies within the range, inclusive.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days covered, or 0 for an inverted range.
func (r DateRange) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.End.Sub(r.Start)/Day) + 1
}

// Overlaps reports whether the two ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !r.End.Before(other.Start) && !other.End.Before(r.Start)
}

// Clamp restricts both ends of r to bounds. The relative order of Start and End is
// preserved, so an inverted range stays inverted.
func (r DateRange) Clamp(bounds DateRange) DateRange {
	return DateRange{
		Start: ClampDate(r.Start, bounds),
		End:   ClampDate(r.End, bounds),
	}
}

// ClampDate restricts a single date to bounds.
func ClampDate(t time.Time, bounds DateRange) time.Time {
	if t.Before(bounds.Start) {
		return bounds.Start
	}
	if t.After(bounds.End) {
		return bounds.End
	}
	return t
}

// String returns the range formatted as "YYYY-MM-DD → YYYY-MM-DD".
func (r DateRange) String() string {
	return fmt.Sprintf("%s → %s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
