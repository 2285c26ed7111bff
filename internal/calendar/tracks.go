package calendar

import (
	"sort"
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

// Range is an inclusive span of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the midnight of every date in the range.
func (r Range) Days(loc *time.Location) []time.Time {
	n := daysBetween(r.Start, r.End, loc) + 1
	if n <= 0 {
		return nil
	}
	first := StartOfDay(r.Start, loc)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// TrackAssignment maps event ids to month-grid tracks for one visible range.
type TrackAssignment struct {
	Positions map[string]int
	// Overflow holds events that fit no track, in placement order.
	Overflow []domain.Event

	rng        Range
	loc        *time.Location
	overflowOn map[int][]domain.Event
}

// Track returns the track of an event and whether it has one.
func (a TrackAssignment) Track(id string) (int, bool) {
	t, ok := a.Positions[id]
	return t, ok
}

// OverflowOn lists the events that touch day but could not be given a track.
func (a TrackAssignment) OverflowOn(day time.Time) []domain.Event {
	if a.loc == nil {
		return nil
	}
	return a.overflowOn[daysBetween(a.rng.Start, day, a.loc)]
}

// AllocateTracks assigns every event visible in rng to one of trackCount
// tracks. Multi-day events are placed first, longest span first and then by
// start; single-day events follow by start. Each event takes the lowest
// track that is free on every day it covers inside rng. Events that fit no
// track end up in Overflow. The result depends only on the inputs.
func AllocateTracks(events []domain.Event, rng Range, trackCount int, loc *time.Location) TrackAssignment {
	if trackCount <= 0 {
		trackCount = DefaultTrackCount
	}
	res := TrackAssignment{
		Positions:  make(map[string]int),
		rng:        rng,
		loc:        loc,
		overflowOn: make(map[int][]domain.Event),
	}

	numDays := daysBetween(rng.Start, rng.End, loc) + 1
	if numDays <= 0 {
		return res
	}

	var multi, single []domain.Event
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
	sort.SliceStable(multi, func(i, j int) bool {
		si, sj := SpanDays(multi[i], loc), SpanDays(multi[j], loc)
		if si != sj {
			return si > sj
		}
		return multi[i].Start.Before(multi[j].Start)
	})
	sort.SliceStable(single, func(i, j int) bool {
		return single[i].Start.Before(single[j].Start)
	})

	occupied := make([][]bool, numDays)
	for i := range occupied {
		occupied[i] = make([]bool, trackCount)
	}

	for _, e := range append(multi, single...) {
		first := daysBetween(rng.Start, e.Start, loc)
		last := daysBetween(rng.Start, e.End, loc)
		if last < 0 || first >= numDays {
			continue
		}
		first = max(first, 0)
		last = min(last, numDays-1)

		track := -1
		for t := 0; t < trackCount; t++ {
			free := true
			for d := first; d <= last; d++ {
				if occupied[d][t] {
					free = false
					break
				}
			}
			if free {
				track = t
				break
			}
		}

		if track < 0 {
			res.Overflow = append(res.Overflow, e)
			for d := first; d <= last; d++ {
				res.overflowOn[d] = append(res.overflowOn[d], e)
			}
			continue
		}

		for d := first; d <= last; d++ {
			occupied[d][track] = true
		}
		res.Positions[e.ID] = track
	}

	return res
}
