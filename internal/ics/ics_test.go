package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

func TestExport_RoundTripsThroughParser(t *testing.T) {
	start := time.Date(2025, time.March, 3, 14, 0, 0, 0, time.UTC)
	events := []*domain.Event{
		{
			ID:           "e1",
			Title:        "Spring campaign",
			Description:  "Front side",
			LocationName: "Main St. board",
			Start:        start,
			End:          start.Add(time.Hour),
			Status:       domain.EventStatusWaiting,
		},
		{
			ID:     "e2",
			Title:  "Missed slot",
			Start:  start.AddDate(0, 0, 1),
			End:    start.AddDate(0, 0, 3),
			Status: domain.EventStatusExpired,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, "Tablu", events, start))

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)
	parsed := cal.Events()
	require.Len(t, parsed, 2)

	first := parsed[0]
	assert.Equal(t, "e1@tablu", first.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Spring campaign", first.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Main St. board", first.GetProperty(ical.ComponentPropertyLocation).Value)
	assert.Equal(t, "CONFIRMED", first.GetProperty(ical.ComponentPropertyStatus).Value)

	gotStart, err := first.GetStartAt()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start))

	assert.Equal(t, "CANCELLED", parsed[1].GetProperty(ical.ComponentPropertyStatus).Value)
	assert.Nil(t, parsed[1].GetProperty(ical.ComponentPropertyLocation))
}

func TestParse_TimedAndAllDayEvents(t *testing.T) {
	body := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:a",
		"DTSTAMP:20250301T000000Z",
		"DTSTART:20250303T140000Z",
		"DTEND:20250303T150000Z",
		"SUMMARY:Weekly slot",
		"RRULE:FREQ=WEEKLY;COUNT=4",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:b",
		"DTSTAMP:20250301T000000Z",
		"DTSTART;VALUE=DATE:20250310",
		"SUMMARY:All day",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:c",
		"DTSTAMP:20250301T000000Z",
		"SUMMARY:No start",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	inputs, err := Parse(strings.NewReader(body))

	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "Weekly slot", inputs[0].Title)
	assert.Equal(t, "FREQ=WEEKLY;COUNT=4", inputs[0].Recurrence)
	assert.Equal(t, time.Hour, inputs[0].End.Sub(inputs[0].Start))

	assert.Equal(t, "All day", inputs[1].Title)
	assert.Equal(t, 10, inputs[1].Start.Day())
	assert.Equal(t, inputs[1].Start.AddDate(0, 0, 1), inputs[1].End)
}

func TestParse_NoEvents(t *testing.T) {
	body := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\nEND:VCALENDAR\r\n"

	_, err := Parse(strings.NewReader(body))

	assert.ErrorIs(t, err, ErrEmptyCalendar)
}
