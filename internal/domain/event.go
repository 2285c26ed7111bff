package domain

import "time"

type EventStatus string

const (
	EventStatusWaiting    EventStatus = "waiting"
	EventStatusActive     EventStatus = "active"
	EventStatusEndingSoon EventStatus = "ending_soon"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusExpired    EventStatus = "expired"
)

// TerminalStatuses are never recomputed by the status refresher.
var TerminalStatuses = []EventStatus{EventStatusCompleted, EventStatusExpired}

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusWaiting, EventStatusActive, EventStatusEndingSoon,
		EventStatusCompleted, EventStatusExpired:
		return true
	}
	return false
}

func (s EventStatus) Terminal() bool {
	return s == EventStatusCompleted || s == EventStatusExpired
}

// Event is a booking of a billboard location for the interval [Start, End).
type Event struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Start        time.Time   `json:"start"`
	End          time.Time   `json:"end"`
	Status       EventStatus `json:"status"`
	OwnerID      string      `json:"owner_id"`
	OwnerName    string      `json:"owner_name"`
	LocationID   string      `json:"location_id"`
	LocationName string      `json:"location_name"`
	SeriesID     string      `json:"series_id,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

type CreateEventInput struct {
	Title        string
	Description  string
	Start        time.Time
	End          time.Time
	OwnerID      string
	LocationID   string
	LocationName string
	// Recurrence is an optional RRULE (e.g. "FREQ=WEEKLY;COUNT=4").
	Recurrence string
}

// UpdateEventInput carries a partial update; nil fields are left untouched.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
}
