package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

func TestDeriveStatus(t *testing.T) {
	start := at(3, 10, 0)
	end := at(3, 12, 0)
	window := 30 * time.Minute

	tests := []struct {
		name    string
		current domain.EventStatus
		now     time.Time
		want    domain.EventStatus
	}{
		{"before start", domain.EventStatusWaiting, at(3, 9, 0), domain.EventStatusWaiting},
		{"at start", domain.EventStatusWaiting, start, domain.EventStatusActive},
		{"running", domain.EventStatusActive, at(3, 11, 0), domain.EventStatusActive},
		{"inside ending window", domain.EventStatusActive, at(3, 11, 30), domain.EventStatusEndingSoon},
		{"finished after running", domain.EventStatusEndingSoon, end, domain.EventStatusCompleted},
		{"finished while waiting", domain.EventStatusWaiting, at(3, 13, 0), domain.EventStatusExpired},
		{"fresh event in the past", "", at(3, 13, 0), domain.EventStatusCompleted},
		{"completed sticks", domain.EventStatusCompleted, at(3, 9, 0), domain.EventStatusCompleted},
		{"expired sticks", domain.EventStatusExpired, at(3, 11, 0), domain.EventStatusExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &domain.Event{Start: start, End: end, Status: tt.current}

			assert.Equal(t, tt.want, DeriveStatus(e, tt.now, window))
		})
	}
}
