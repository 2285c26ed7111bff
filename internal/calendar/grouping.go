package calendar

import (
	"sort"
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

// GroupEvents partitions events into columns of mutually non-overlapping
// events. Events are taken in start order (ties keep input order) and each
// one lands in the first group whose last event ends no later than its
// start. This is first-fit, not an optimal colouring, and column order is
// observable. Events with End <= Start are skipped.
func GroupEvents(events []domain.Event) [][]domain.Event {
	sorted := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !Valid(e) {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var groups [][]domain.Event
	for _, e := range sorted {
		placed := false
		for gi := range groups {
			last := groups[gi][len(groups[gi])-1]
			if !last.End.After(e.Start) {
				groups[gi] = append(groups[gi], e)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []domain.Event{e})
		}
	}
	return groups
}

// Placement is the render instruction for one event inside a day column.
type Placement struct {
	Event domain.Event
	// Start and End are the event's interval clipped to the day.
	Start   time.Time
	End     time.Time
	Column  int
	Columns int
	// Width and Left are percentages of the day column.
	Width     float64
	Left      float64
	FullWidth bool
	// Top and Height are pixel values in the 24-hour grid.
	Top    float64
	Height float64
}

// DayColumns lays out every event touching day inside that day's time grid.
// Multi-day events are clipped to the day before grouping.
func DayColumns(events []domain.Event, day time.Time, s Settings) []Placement {
	s = s.Normalize()
	loc := s.Location

	byID := make(map[string]domain.Event, len(events))
	clipped := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !Valid(e) || !Touches(e, day, loc) {
			continue
		}
		start, end := ClampToDay(e, day, loc)
		if !start.Before(end) {
			continue
		}
		byID[e.ID] = e
		c := e
		c.Start, c.End = start, end
		clipped = append(clipped, c)
	}

	groups := GroupEvents(clipped)
	if len(groups) == 0 {
		return nil
	}

	width := 100 / float64(len(groups))
	out := make([]Placement, 0, len(clipped))
	for gi, group := range groups {
		for _, c := range group {
			p := Placement{
				Event:   byID[c.ID],
				Start:   c.Start,
				End:     c.End,
				Column:  gi,
				Columns: len(groups),
				Width:   width,
				Left:    float64(gi) * width,
				Top:     s.Mapper.Offset(c.Start, loc),
				Height:  s.Mapper.Height(c.Start, c.End),
			}
			if !overlapsOtherGroups(c, gi, groups) {
				p.FullWidth = true
				p.Width = 100
				p.Left = 0
			}
			out = append(out, p)
		}
	}
	return out
}

func overlapsOtherGroups(e domain.Event, own int, groups [][]domain.Event) bool {
	for gi, group := range groups {
		if gi == own {
			continue
		}
		for _, other := range group {
			if Overlaps(e, other) {
				return true
			}
		}
	}
	return false
}
