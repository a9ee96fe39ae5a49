// Package schedule contains the pure calendar-date rules used by mission evaluation.
// This is part of the Functional Core - no I/O, only pure functions.
package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted date format (YYYY-MM-DD, no time of day, no zone).
const DateLayout = "2006-01-02"

// DateFormatError reports a date field that does not conform to DateLayout.
type DateFormatError struct {
	Field string // e.g. "start_date"; may be empty when parsed standalone
	Value string
}

func (e *DateFormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
	}
	return fmt.Sprintf("invalid %s %q: expected YYYY-MM-DD", e.Field, e.Value)
}

// ParseDate parses a calendar date in the fixed YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	// time.Parse accepts single-digit fields for some layouts; require the exact width.
	if len(s) != len(DateLayout) {
		return time.Time{}, &DateFormatError{Value: s}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &DateFormatError{Value: s}
	}
	return t, nil
}

// HasOverlap reports whether [startA, endA] and [startB, endB] intersect.
// Both ends are inclusive: a range ending on the day another starts overlaps it.
func HasOverlap(startA, endA, startB, endB time.Time) bool {
	return !latest(startA, startB).After(earliest(endA, endB))
}

// Window is a closed calendar-date interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// ParseWindow parses a start/end pair, tagging failures with the offending field.
// start <= end is assumed, not enforced.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Window{}, &DateFormatError{Field: "start_date", Value: start}
	}
	e, err := ParseDate(end)
	if err != nil {
		return Window{}, &DateFormatError{Field: "end_date", Value: end}
	}
	return Window{Start: s, End: e}, nil
}

// Overlaps reports whether two windows share at least one day.
func (w Window) Overlaps(other Window) bool {
	return HasOverlap(w.Start, w.End, other.Start, other.End)
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
