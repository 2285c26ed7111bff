package ics

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

const (
	productID = "-//Tablu//Booking Calendar//EN"
	uidSuffix = "@tablu"
)

// Export writes events as a single VCALENDAR. Times are emitted in UTC.
func Export(w io.Writer, name string, events []*domain.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(name)

	for _, e := range events {
		ve := cal.AddEvent(e.ID + uidSuffix)
		ve.SetDtStampTime(now)
		ve.SetStartAt(e.Start)
		ve.SetEndAt(e.End)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.LocationName != "" {
			ve.SetLocation(e.LocationName)
		}
		if !e.CreatedAt.IsZero() {
			ve.SetCreatedTime(e.CreatedAt)
		}
		if !e.UpdatedAt.IsZero() {
			ve.SetModifiedAt(e.UpdatedAt)
		}
		ve.SetStatus(objectStatus(e.Status))
		ve.SetProperty(ical.ComponentPropertyCategories, string(e.Status))
	}

	return cal.SerializeTo(w)
}

func objectStatus(s domain.EventStatus) ical.ObjectStatus {
	if s == domain.EventStatusExpired {
		return ical.ObjectStatusCancelled
	}
	return ical.ObjectStatusConfirmed
}
