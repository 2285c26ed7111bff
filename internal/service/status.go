package service

import (
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

// DeriveStatus computes the status e should have at now. Terminal statuses
// stick; an event whose end passes while it is still waiting expires instead
// of completing.
func DeriveStatus(e *domain.Event, now time.Time, endingSoon time.Duration) domain.EventStatus {
	if e.Status.Terminal() {
		return e.Status
	}

	switch {
	case now.Before(e.Start):
		return domain.EventStatusWaiting
	case !now.Before(e.End):
		if e.Status == domain.EventStatusWaiting {
			return domain.EventStatusExpired
		}
		return domain.EventStatusCompleted
	case e.End.Sub(now) <= endingSoon:
		return domain.EventStatusEndingSoon
	default:
		return domain.EventStatusActive
	}
}

// freshStatus is the status of an event whose interval was just set, as if
// nothing had been observed about it before.
func freshStatus(e *domain.Event, now time.Time, endingSoon time.Duration) domain.EventStatus {
	probe := *e
	probe.Status = ""
	return DeriveStatus(&probe, now, endingSoon)
}
