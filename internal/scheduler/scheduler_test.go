package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RefreshesStatuses(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)
	log := newTestLogger(t)

	s := New(refresher, 50*time.Millisecond, log)

	changed := []*domain.Event{
		{ID: "e1", OwnerID: "u1", Status: domain.EventStatusActive},
	}
	refresher.EXPECT().RefreshStatuses(mock.Anything).Return(changed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)
	log := newTestLogger(t)

	s := New(refresher, 50*time.Millisecond, log)

	refresher.EXPECT().RefreshStatuses(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)
	log := newTestLogger(t)

	s := New(refresher, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)
	log := newTestLogger(t)

	s := New(refresher, 30*time.Millisecond, log)

	refresher.EXPECT().RefreshStatuses(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(refresher.Calls)
	assert.GreaterOrEqual(t, calls, 2)
}
