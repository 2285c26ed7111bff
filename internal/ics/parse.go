package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

var ErrEmptyCalendar = errors.New("calendar has no events")

// Parse reads VEVENTs as booking inputs. RRULEs are carried over verbatim so
// the event service expands them like any other recurring booking. Events
// without a usable DTSTART/DTEND are skipped; all-day events are taken as
// whole days.
func Parse(r io.Reader) ([]domain.CreateEventInput, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var out []domain.CreateEventInput
	for _, ve := range cal.Events() {
		in, ok := parseEvent(ve)
		if !ok {
			continue
		}
		out = append(out, in)
	}
	if len(out) == 0 {
		return nil, ErrEmptyCalendar
	}
	return out, nil
}

func parseEvent(ve *ical.VEvent) (domain.CreateEventInput, bool) {
	var in domain.CreateEventInput

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		in.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		in.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		in.LocationName = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		in.Recurrence = p.Value
	}

	if allDay(ve) {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			return in, false
		}
		end, err := ve.GetAllDayEndAt()
		if err != nil || !end.After(start) {
			end = start.AddDate(0, 0, 1)
		}
		in.Start, in.End = start, end
		return in, true
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return in, false
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return in, false
	}
	in.Start, in.End = start, end
	return in, true
}

func allDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
