package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/calendar"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/service/ports/mocks"
)

func newTestCalendarService(t *testing.T) (*CalendarService, *mocks.MockEventStore) {
	t.Helper()
	repo := mocks.NewMockEventStore(t)
	svc := NewCalendarService(repo, calendar.DefaultSettings(), newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestCalendarService_Day_SkipsInvalidEvents(t *testing.T) {
	svc, repo := newTestCalendarService(t)

	repo.EXPECT().ListBetween(mock.Anything, at(3, 0, 0), at(4, 0, 0)).Return([]*domain.Event{
		{ID: "a", Start: at(3, 9, 0), End: at(3, 11, 0)},
		{ID: "b", Start: at(3, 10, 0), End: at(3, 12, 0)},
		{ID: "broken", Start: at(3, 12, 0), End: at(3, 12, 0)},
	}, nil)

	day, err := svc.Day(context.Background(), at(3, 15, 0))

	require.NoError(t, err)
	assert.Equal(t, at(3, 0, 0), day.Date)
	require.Len(t, day.Placements, 2)
	for _, p := range day.Placements {
		assert.Equal(t, 2, p.Columns)
		assert.False(t, p.FullWidth)
	}
}

func TestCalendarService_Week(t *testing.T) {
	svc, repo := newTestCalendarService(t)

	// 2025-03-05 is a Wednesday; weeks start on Monday.
	repo.EXPECT().ListBetween(mock.Anything, at(3, 0, 0), at(10, 0, 0)).Return([]*domain.Event{
		{ID: "long", Start: at(3, 9, 0), End: at(6, 17, 0)},
		{ID: "short", Start: at(4, 9, 0), End: at(4, 10, 0)},
	}, nil)

	w, err := svc.Week(context.Background(), at(5, 12, 0))

	require.NoError(t, err)
	require.Len(t, w.Days, 7)
	require.Len(t, w.Banner, 7)
	track, ok := w.Tracks.Track("long")
	require.True(t, ok)
	assert.Equal(t, 0, track)
	assert.Len(t, w.Days[1].Placements, 2)
}

func TestCalendarService_Month_TracksAndOverflow(t *testing.T) {
	svc, repo := newTestCalendarService(t)

	// March 2025 grid runs Mon Feb 24 through Sun Apr 6.
	from := time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ListBetween(mock.Anything, from, to).Return([]*domain.Event{
		{ID: "m1", Start: at(10, 9, 0), End: at(12, 17, 0)},
		{ID: "m2", Start: at(10, 9, 0), End: at(11, 17, 0)},
		{ID: "m3", Start: at(11, 9, 0), End: at(12, 10, 0)},
		{ID: "s4", Start: at(11, 13, 0), End: at(11, 14, 0)},
	}, nil)

	m, err := svc.Month(context.Background(), 2025, time.March)

	require.NoError(t, err)
	assert.Equal(t, time.March, m.Month)
	require.Len(t, m.Weeks, 6)
	require.Len(t, m.Tracks.Overflow, 1)
	assert.Equal(t, "s4", m.Tracks.Overflow[0].ID)

	// Tuesday March 11 sits in the third grid row.
	cell := m.Weeks[2][1]
	assert.Equal(t, at(11, 0, 0), cell.Date)
	assert.Len(t, cell.Entries, 3)
	assert.Equal(t, 1, cell.More)
}

func TestCalendarService_Year(t *testing.T) {
	svc, repo := newTestCalendarService(t)

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ListBetween(mock.Anything, from, to).Return([]*domain.Event{
		{ID: "a", Start: at(3, 9, 0), End: at(4, 10, 0)},
	}, nil)

	y, err := svc.Year(context.Background(), 2025)

	require.NoError(t, err)
	require.Len(t, y.Months, 12)
	march := y.Months[2]
	assert.Equal(t, 1, march.Counts[2])
	assert.Equal(t, 1, march.Counts[3])
	assert.Equal(t, 0, march.Counts[4])
}

func TestCalendarService_RepoError(t *testing.T) {
	svc, repo := newTestCalendarService(t)

	repo.EXPECT().ListBetween(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Day(context.Background(), at(3, 0, 0))

	require.Error(t, err)
}

func TestCalendarService_Export(t *testing.T) {
	svc, repo := newTestCalendarService(t)

	repo.EXPECT().ListBetween(mock.Anything, at(1, 0, 0), at(8, 0, 0)).Return([]*domain.Event{
		{ID: "a", Title: "Campaign", Start: at(3, 9, 0), End: at(3, 10, 0), Status: domain.EventStatusWaiting},
	}, nil)

	var buf bytes.Buffer
	err := svc.Export(context.Background(), &buf, at(1, 0, 0), at(7, 0, 0))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, buf.String(), "SUMMARY:Campaign")
	assert.Contains(t, buf.String(), "UID:a@tablu")
}
