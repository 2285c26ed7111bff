package calendar

import (
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

// 2025-03-03 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
}

func ev(id string, start, end time.Time) domain.Event {
	return domain.Event{ID: id, Start: start, End: end, Status: domain.EventStatusWaiting}
}

func ids(events []domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func testSettings() Settings {
	return DefaultSettings()
}
