package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
}

type eventDeps struct {
	repo     *mocks.MockEventStore
	users    *mocks.MockUserRepo
	notifier *mocks.MockNotifier
}

func newTestEventService(t *testing.T, cfg EventConfig) (*EventService, eventDeps) {
	t.Helper()
	deps := eventDeps{
		repo:     mocks.NewMockEventStore(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}
	svc := NewEventService(deps.repo, deps.users, deps.notifier, cfg, newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc, deps
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})
	owner := &domain.User{ID: "u1", Username: "alice", DisplayName: "Alice Ads"}

	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)
	deps.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	events, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:        "Spring campaign",
		Start:        at(3, 14, 0),
		End:          at(3, 15, 0),
		OwnerID:      "u1",
		LocationID:   "board-7",
		LocationName: "Main St.",
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	e := events[0]
	assert.NotEmpty(t, e.ID)
	assert.Empty(t, e.SeriesID)
	assert.Equal(t, "Alice Ads", e.OwnerName)
	assert.Equal(t, "board-7", e.LocationID)
	assert.Equal(t, domain.EventStatusWaiting, e.Status)
	assert.Equal(t, testNow, e.CreatedAt)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	svc, _ := newTestEventService(t, EventConfig{})

	tests := []struct {
		name  string
		input domain.CreateEventInput
		want  error
	}{
		{"no title", domain.CreateEventInput{OwnerID: "u1", Start: at(3, 9, 0), End: at(3, 10, 0)}, domain.ErrValidation},
		{"no owner", domain.CreateEventInput{Title: "x", Start: at(3, 9, 0), End: at(3, 10, 0)}, domain.ErrValidation},
		{"end before start", domain.CreateEventInput{Title: "x", OwnerID: "u1", Start: at(3, 10, 0), End: at(3, 9, 0)}, domain.ErrInvalidInterval},
		{"empty interval", domain.CreateEventInput{Title: "x", OwnerID: "u1", Start: at(3, 10, 0), End: at(3, 10, 0)}, domain.ErrInvalidInterval},
		{"too short", domain.CreateEventInput{Title: "x", OwnerID: "u1", Start: at(3, 10, 0), End: at(3, 10, 10)}, domain.ErrTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEventService_CreateEvent_OwnerNotFound(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})

	deps.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title: "x", OwnerID: "ghost", Start: at(3, 9, 0), End: at(3, 10, 0),
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEventService_CreateEvent_RecurringSeries(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})

	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	deps.repo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)

	events, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:      "Weekly slot",
		OwnerID:    "u1",
		Start:      at(3, 14, 0),
		End:        at(3, 16, 0),
		Recurrence: "RRULE:FREQ=WEEKLY;COUNT=4",
	})

	require.NoError(t, err)
	require.Len(t, events, 4)
	series := events[0].SeriesID
	assert.NotEmpty(t, series)
	for i, e := range events {
		assert.Equal(t, series, e.SeriesID)
		assert.True(t, e.Start.Equal(at(3+7*i, 14, 0)), "occurrence %d starts %s", i, e.Start)
		assert.Equal(t, 2*time.Hour, e.Duration())
		assert.Equal(t, "alice", e.OwnerName)
	}
}

func TestEventService_CreateEvent_UnboundedRecurrenceIsCapped(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{MaxRecurrence: 5})

	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	deps.repo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)

	events, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title: "Daily", OwnerID: "u1", Start: at(3, 8, 0), End: at(3, 9, 0), Recurrence: "FREQ=DAILY",
	})

	require.NoError(t, err)
	assert.Len(t, events, 5)
}

func TestEventService_CreateEvent_InvalidRecurrence(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})

	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title: "x", OwnerID: "u1", Start: at(3, 8, 0), End: at(3, 9, 0), Recurrence: "FREQ=SOMETIMES",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Reschedule_Success(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{RescheduleNotifyDelay: 10 * time.Millisecond})
	owner := &domain.User{ID: "u1", Username: "alice"}
	stored := &domain.Event{
		ID: "e1", Title: "Campaign", OwnerID: "u1",
		Start: at(3, 14, 0), End: at(3, 15, 0), Status: domain.EventStatusWaiting,
	}

	deps.repo.EXPECT().GetByID(mock.Anything, "e1").Return(stored, nil)
	deps.repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Start.Equal(at(5, 14, 0)) && e.End.Equal(at(5, 15, 0))
	})).Return(nil)
	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)
	deps.notifier.EXPECT().NotifyEventRescheduled(mock.Anything, owner, mock.Anything).Return()

	e, err := svc.Reschedule(context.Background(), "e1", at(5, 14, 0), at(5, 15, 0))

	require.NoError(t, err)
	assert.Equal(t, at(5, 14, 0), e.Start)
	assert.Equal(t, testNow, e.UpdatedAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_Reschedule_RevivesFinishedEvent(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{RescheduleNotifyDelay: 10 * time.Millisecond})
	stored := &domain.Event{
		ID: "e1", Title: "Campaign", OwnerID: "u1",
		Start: at(1, 8, 0), End: at(1, 9, 0), Status: domain.EventStatusExpired,
	}

	deps.repo.EXPECT().GetByID(mock.Anything, "e1").Return(stored, nil)
	deps.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	deps.notifier.EXPECT().NotifyEventRescheduled(mock.Anything, mock.Anything, mock.Anything).Return()

	e, err := svc.Reschedule(context.Background(), "e1", at(4, 8, 0), at(4, 9, 0))

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusWaiting, e.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestEventService_Reschedule_OneNoticePerGesture(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{RescheduleNotifyDelay: 30 * time.Millisecond})
	owner := &domain.User{ID: "u1", Username: "alice"}
	stored := &domain.Event{
		ID: "e1", Title: "Campaign", OwnerID: "u1",
		Start: at(3, 14, 0), End: at(3, 15, 0), Status: domain.EventStatusWaiting,
	}

	deps.repo.EXPECT().GetByID(mock.Anything, "e1").RunAndReturn(func(context.Context, string) (*domain.Event, error) {
		e := *stored
		return &e, nil
	})
	deps.repo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, e *domain.Event) error {
		*stored = *e
		return nil
	})
	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil).Once()
	deps.notifier.EXPECT().NotifyEventRescheduled(mock.Anything, owner, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Start.Equal(at(3, 14, 0)) && e.End.Equal(at(3, 16, 0))
	})).Return().Once()

	// A resize gesture commits on every tick.
	for minutes := 75; minutes <= 120; minutes += 5 {
		_, err := svc.Reschedule(context.Background(), "e1", at(3, 14, 0), at(3, 14, 0).Add(time.Duration(minutes)*time.Minute))
		require.NoError(t, err)
	}

	time.Sleep(150 * time.Millisecond)
}

func TestEventService_FlushNotices(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{RescheduleNotifyDelay: time.Hour})
	owner := &domain.User{ID: "u1", Username: "alice"}
	stored := &domain.Event{
		ID: "e1", Title: "Campaign", OwnerID: "u1",
		Start: at(3, 14, 0), End: at(3, 15, 0), Status: domain.EventStatusWaiting,
	}

	deps.repo.EXPECT().GetByID(mock.Anything, "e1").Return(stored, nil)
	deps.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil).Once()
	deps.notifier.EXPECT().NotifyEventRescheduled(mock.Anything, owner, mock.Anything).Return().Once()

	_, err := svc.Reschedule(context.Background(), "e1", at(4, 14, 0), at(4, 15, 0))
	require.NoError(t, err)

	svc.FlushNotices()
	svc.FlushNotices()
}

func TestEventService_Reschedule_Rejected(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})
	stored := &domain.Event{ID: "e1", OwnerID: "u1", Start: at(3, 14, 0), End: at(3, 15, 0)}

	deps.repo.EXPECT().GetByID(mock.Anything, "e1").Return(stored, nil)

	_, err := svc.Reschedule(context.Background(), "e1", at(3, 14, 0), at(3, 14, 5))

	assert.ErrorIs(t, err, domain.ErrTooShort)
}

func TestEventService_Reschedule_NotFound(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})

	deps.repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Reschedule(context.Background(), "missing", at(3, 14, 0), at(3, 15, 0))

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ReportCommitFailure(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})
	owner := &domain.User{ID: "u1"}
	stored := &domain.Event{ID: "e1", OwnerID: "u1", Start: at(3, 14, 0), End: at(3, 15, 0)}

	deps.repo.EXPECT().GetByID(mock.Anything, "e1").Return(stored, nil)
	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)
	deps.notifier.EXPECT().NotifyCommitFailed(mock.Anything, owner, stored, "db down").Return()

	svc.ReportCommitFailure(context.Background(), "e1", errors.New("db down"))
}

func TestEventService_ReportCommitFailure_EventGone(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})

	deps.repo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	svc.ReportCommitFailure(context.Background(), "e1", errors.New("db down"))
}

func TestEventService_UpdateEvent_TitleOnly(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})
	stored := &domain.Event{ID: "e1", Title: "Old", Start: at(1, 8, 0), End: at(1, 9, 0), Status: domain.EventStatusExpired}

	deps.repo.EXPECT().GetByID(mock.Anything, "e1").Return(stored, nil)
	deps.repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	title := "New"
	e, err := svc.UpdateEvent(context.Background(), "e1", domain.UpdateEventInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "New", e.Title)
	assert.Equal(t, domain.EventStatusExpired, e.Status, "status is kept when the interval is untouched")
}

func TestEventService_DeleteEvent(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})

	deps.repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	deps.repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	require.NoError(t, svc.DeleteEvent(context.Background(), "e1"))
	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), "missing"), domain.ErrEventNotFound)
}

func TestEventService_RefreshStatuses(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{EndingSoonWindow: 30 * time.Minute})
	owner := &domain.User{ID: "u1"}

	missed := &domain.Event{ID: "missed", OwnerID: "u1", Start: at(1, 8, 0), End: at(1, 9, 0), Status: domain.EventStatusWaiting}
	closing := &domain.Event{ID: "closing", OwnerID: "u1", Start: at(1, 11, 0), End: at(1, 12, 20), Status: domain.EventStatusActive}
	later := &domain.Event{ID: "later", OwnerID: "u1", Start: at(2, 8, 0), End: at(2, 9, 0), Status: domain.EventStatusWaiting}

	deps.repo.EXPECT().ListByStatus(mock.Anything, []domain.EventStatus{
		domain.EventStatusWaiting, domain.EventStatusActive, domain.EventStatusEndingSoon,
	}).Return([]*domain.Event{missed, closing, later}, nil)
	deps.repo.EXPECT().UpdateStatus(mock.Anything, "missed", domain.EventStatusExpired).Return(nil)
	deps.repo.EXPECT().UpdateStatus(mock.Anything, "closing", domain.EventStatusEndingSoon).Return(nil)
	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil).Times(2)
	deps.notifier.EXPECT().NotifyStatusChanged(mock.Anything, owner, mock.Anything).Return().Times(2)

	changed, err := svc.RefreshStatuses(context.Background())

	require.NoError(t, err)
	require.Len(t, changed, 2)
	assert.Equal(t, domain.EventStatusExpired, changed[0].Status)
	assert.Equal(t, domain.EventStatusEndingSoon, changed[1].Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_RefreshStatuses_RepoError(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})

	deps.repo.EXPECT().ListByStatus(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RefreshStatuses(context.Background())

	require.Error(t, err)
}

func TestEventService_Import_SkipsInvalid(t *testing.T) {
	svc, deps := newTestEventService(t, EventConfig{})

	deps.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	deps.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	created, skipped, err := svc.Import(context.Background(), "u1", []domain.CreateEventInput{
		{Start: at(3, 9, 0), End: at(3, 10, 0)},
		{Title: "blip", Start: at(3, 9, 0), End: at(3, 9, 1)},
	})

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Imported booking", created[0].Title)
	assert.Equal(t, 1, skipped)
}
