package calendar

import (
	"sort"
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

// Role tells which segment of an event a cell shows.
type Role string

const (
	RoleNone   Role = "none"
	RoleStart  Role = "start"
	RoleMiddle Role = "middle"
	RoleEnd    Role = "end"
)

type CellEntry struct {
	Event    domain.Event
	Track    int
	Role     Role
	MultiDay bool
}

// Cell is everything a month-grid day needs to render.
type Cell struct {
	Date    time.Time
	Entries []CellEntry
	// Overflow lists touching events without a track; More is its length.
	Overflow []domain.Event
	More     int
}

// Touches reports whether the event covers any part of day. The start of the
// day must fall inside [Start, End], or the day must be the start or end
// date, which guards against boundary truncation.
func Touches(e domain.Event, day time.Time, loc *time.Location) bool {
	dayStart := StartOfDay(day, loc)
	if !dayStart.Before(e.Start) && !dayStart.After(e.End) {
		return true
	}
	return SameDate(day, e.Start, loc) || SameDate(day, e.End, loc)
}

// RoleOn returns the segment role of the event on day.
func RoleOn(e domain.Event, day time.Time, loc *time.Location) Role {
	if !IsMultiDay(e, loc) {
		return RoleNone
	}
	switch {
	case SameDate(day, e.Start, loc):
		return RoleStart
	case SameDate(day, e.End, loc):
		return RoleEnd
	default:
		return RoleMiddle
	}
}

// ResolveCell returns the events touching day with their track and role,
// multi-day events first and then by track.
func ResolveCell(day time.Time, events []domain.Event, tracks TrackAssignment, loc *time.Location) Cell {
	cell := Cell{Date: StartOfDay(day, loc)}

	for _, e := range events {
		if !Valid(e) || !Touches(e, day, loc) {
			continue
		}
		track, ok := tracks.Track(e.ID)
		if !ok {
			cell.Overflow = append(cell.Overflow, e)
			continue
		}
		cell.Entries = append(cell.Entries, CellEntry{
			Event:    e,
			Track:    track,
			Role:     RoleOn(e, day, loc),
			MultiDay: IsMultiDay(e, loc),
		})
	}

	sort.SliceStable(cell.Entries, func(i, j int) bool {
		a, b := cell.Entries[i], cell.Entries[j]
		if a.MultiDay != b.MultiDay {
			return a.MultiDay
		}
		return a.Track < b.Track
	})
	cell.More = len(cell.Overflow)
	return cell
}
