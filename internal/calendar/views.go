package calendar

import (
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

// monthGridDays is six full weeks, enough for any month.
const monthGridDays = 42

func DayRange(t time.Time, loc *time.Location) Range {
	d := StartOfDay(t, loc)
	return Range{Start: d, End: d}
}

func WeekRange(t time.Time, weekStart time.Weekday, loc *time.Location) Range {
	d := StartOfDay(t, loc)
	back := (int(d.Weekday()) - int(weekStart) + 7) % 7
	start := d.AddDate(0, 0, -back)
	return Range{Start: start, End: start.AddDate(0, 0, 6)}
}

func MonthRange(t time.Time, loc *time.Location) Range {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return Range{Start: start, End: start.AddDate(0, 1, -1)}
}

// MonthGridRange is the 6x7 grid around t's month, starting on weekStart.
func MonthGridRange(t time.Time, weekStart time.Weekday, loc *time.Location) Range {
	first := WeekRange(MonthRange(t, loc).Start, weekStart, loc).Start
	return Range{Start: first, End: first.AddDate(0, 0, monthGridDays-1)}
}

func YearRange(year int, loc *time.Location) Range {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return Range{Start: start, End: start.AddDate(1, 0, -1)}
}

// Bounds converts the inclusive date range to the half-open instant range
// [first midnight, midnight after the last day).
func (r Range) Bounds(loc *time.Location) (time.Time, time.Time) {
	return StartOfDay(r.Start, loc), StartOfDay(r.End, loc).AddDate(0, 0, 1)
}

// Partition splits valid events into multi-day and single-day ones, keeping
// input order.
func Partition(events []domain.Event, loc *time.Location) (multi, single []domain.Event) {
	for _, e := range events {
		if !Valid(e) {
			continue
		}
		if IsMultiDay(e, loc) {
			multi = append(multi, e)
		} else {
			single = append(single, e)
		}
	}
	return multi, single
}

// InRange keeps the valid events touching at least one day of r. An event
// ending exactly at the first midnight still touches, matching Touches.
func InRange(events []domain.Event, r Range, loc *time.Location) []domain.Event {
	from, to := r.Bounds(loc)
	var out []domain.Event
	for _, e := range events {
		if !Valid(e) {
			continue
		}
		if e.Start.Before(to) && !e.End.Before(from) {
			out = append(out, e)
		}
	}
	return out
}

type DayLayout struct {
	Date       time.Time
	Placements []Placement
}

// Day lays out a single day's time grid.
func Day(events []domain.Event, day time.Time, s Settings) DayLayout {
	s = s.Normalize()
	return DayLayout{
		Date:       StartOfDay(day, s.Location),
		Placements: DayColumns(events, day, s),
	}
}

type WeekLayout struct {
	Range Range
	Days  []DayLayout
	// Banner holds multi-day events laid out on tracks above the time grid.
	Banner []Cell
	Tracks TrackAssignment
}

// Week lays out seven time-grid columns plus the multi-day banner.
func Week(events []domain.Event, t time.Time, s Settings) WeekLayout {
	s = s.Normalize()
	loc := s.Location
	rng := WeekRange(t, s.WeekStart, loc)
	visible := InRange(events, rng, loc)
	multi, _ := Partition(visible, loc)

	w := WeekLayout{
		Range:  rng,
		Tracks: AllocateTracks(multi, rng, s.TrackCount, loc),
	}
	for _, day := range rng.Days(loc) {
		w.Days = append(w.Days, Day(visible, day, s))
		w.Banner = append(w.Banner, ResolveCell(day, multi, w.Tracks, loc))
	}
	return w
}

type MonthLayout struct {
	Month  time.Month
	Year   int
	Range  Range
	Tracks TrackAssignment
	Weeks  [][]Cell
}

// Month resolves every cell of the month grid around t.
func Month(events []domain.Event, t time.Time, s Settings) MonthLayout {
	s = s.Normalize()
	loc := s.Location
	t = t.In(loc)
	rng := MonthGridRange(t, s.WeekStart, loc)
	visible := InRange(events, rng, loc)

	m := MonthLayout{
		Month:  t.Month(),
		Year:   t.Year(),
		Range:  rng,
		Tracks: AllocateTracks(visible, rng, s.TrackCount, loc),
	}
	days := rng.Days(loc)
	for i := 0; i < len(days); i += 7 {
		week := make([]Cell, 0, 7)
		for _, day := range days[i:min(i+7, len(days))] {
			week = append(week, ResolveCell(day, visible, m.Tracks, loc))
		}
		m.Weeks = append(m.Weeks, week)
	}
	return m
}

type MonthSummary struct {
	Month time.Month
	// Counts[d-1] is the number of events touching day d.
	Counts []int
}

type YearLayout struct {
	Year   int
	Months []MonthSummary
}

// Year counts events per day for each month of year.
func Year(events []domain.Event, year int, s Settings) YearLayout {
	s = s.Normalize()
	loc := s.Location
	visible := InRange(events, YearRange(year, loc), loc)

	y := YearLayout{Year: year}
	for month := time.January; month <= time.December; month++ {
		rng := MonthRange(time.Date(year, month, 1, 0, 0, 0, 0, loc), loc)
		inMonth := InRange(visible, rng, loc)
		days := rng.Days(loc)
		ms := MonthSummary{Month: month, Counts: make([]int, len(days))}
		for i, day := range days {
			for _, e := range inMonth {
				if Touches(e, day, loc) {
					ms.Counts[i]++
				}
			}
		}
		y.Months = append(y.Months, ms)
	}
	return y
}
