package calendar

import (
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

// Overlaps reports whether two events share any instant. Intervals are
// half-open, so touching endpoints do not overlap.
func Overlaps(a, b domain.Event) bool {
	return rangesOverlap(a.Start, a.End, b.Start, b.End)
}

func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Valid reports whether the event has a non-empty interval.
func Valid(e domain.Event) bool {
	return e.Start.Before(e.End)
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay is the last representable instant of t's calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func SameDate(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsMultiDay reports whether the event starts and ends on different dates.
func IsMultiDay(e domain.Event, loc *time.Location) bool {
	return !SameDate(e.Start, e.End, loc)
}

// ClampToDay clips the event to [StartOfDay(day), EndOfDay(day)]. An event
// entirely inside the day is returned unchanged.
func ClampToDay(e domain.Event, day time.Time, loc *time.Location) (time.Time, time.Time) {
	dayStart := StartOfDay(day, loc)
	dayEnd := EndOfDay(day, loc)

	start, end := e.Start, e.End
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}
	return start, end
}

// civil maps t to midnight UTC of its calendar date in loc, which makes day
// differences immune to DST shifts.
func civil(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days from a to b in loc.
func daysBetween(a, b time.Time, loc *time.Location) int {
	return int(civil(b, loc).Sub(civil(a, loc)).Hours() / 24)
}

// SpanDays is the number of calendar dates the event touches.
func SpanDays(e domain.Event, loc *time.Location) int {
	return daysBetween(e.Start, e.End, loc) + 1
}
