package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/observability"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/service/ports"
)

const (
	defaultMinDuration      = 15 * time.Minute
	defaultEndingSoonWindow = 30 * time.Minute
	defaultMaxRecurrence    = 52
	defaultNotifyDelay      = 5 * time.Second
)

type EventConfig struct {
	Location         *time.Location
	MinDuration      time.Duration
	EndingSoonWindow time.Duration
	MaxRecurrence    int

	// RescheduleNotifyDelay is how long an event must stay put before its
	// owner hears about the move. Every commit of a drag or resize restarts it.
	RescheduleNotifyDelay time.Duration
}

func (c EventConfig) withDefaults() EventConfig {
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.MinDuration <= 0 {
		c.MinDuration = defaultMinDuration
	}
	if c.EndingSoonWindow <= 0 {
		c.EndingSoonWindow = defaultEndingSoonWindow
	}
	if c.MaxRecurrence <= 0 {
		c.MaxRecurrence = defaultMaxRecurrence
	}
	if c.RescheduleNotifyDelay <= 0 {
		c.RescheduleNotifyDelay = defaultNotifyDelay
	}
	return c
}

type EventService struct {
	repo     ports.EventStore
	userRepo ports.UserRepo
	notifier ports.Notifier
	cfg      EventConfig
	logger   logger.Logger
	now      func() time.Time

	noticeMu sync.Mutex
	notices  map[string]*rescheduleNotice
}

type rescheduleNotice struct {
	ctx   context.Context
	event domain.Event
	timer *time.Timer
}

func NewEventService(
	repo ports.EventStore,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	cfg EventConfig,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		cfg:      cfg.withDefaults(),
		logger:   logger,
		now:      time.Now,
		notices:  make(map[string]*rescheduleNotice),
	}
}

func (s *EventService) validateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return domain.ErrInvalidInterval
	}
	if end.Sub(start) < s.cfg.MinDuration {
		return domain.ErrTooShort
	}
	return nil
}

// CreateEvent books a location for the owner. With a recurrence rule the
// booking is expanded into a series sharing one SeriesID.
func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) ([]*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", domain.ErrValidation)
	}
	if err := s.validateInterval(input.Start, input.End); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	starts, err := s.occurrences(input)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	seriesID := ""
	if len(starts) > 1 {
		seriesID = uuid.New().String()
	}
	duration := input.End.Sub(input.Start)

	events := make([]*domain.Event, 0, len(starts))
	for _, start := range starts {
		e := &domain.Event{
			ID:           uuid.New().String(),
			Title:        input.Title,
			Description:  input.Description,
			Start:        start,
			End:          start.Add(duration),
			OwnerID:      owner.ID,
			OwnerName:    owner.Name(),
			LocationID:   input.LocationID,
			LocationName: input.LocationName,
			SeriesID:     seriesID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		e.Status = freshStatus(e, now, s.cfg.EndingSoonWindow)
		events = append(events, e)
	}

	if len(events) == 1 {
		err = s.repo.Create(ctx, events[0])
	} else {
		err = s.repo.CreateBatch(ctx, events)
	}
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", events[0].ID),
		logger.String("owner_id", owner.ID),
		logger.Int("occurrences", len(events)),
	)

	return events, nil
}

// occurrences expands the recurrence rule anchored at input.Start in the
// calendar location. Unbounded rules stop at MaxRecurrence.
func (s *EventService) occurrences(input domain.CreateEventInput) ([]time.Time, error) {
	if input.Recurrence == "" {
		return []time.Time{input.Start}, nil
	}

	rule := strings.TrimPrefix(strings.TrimSpace(input.Recurrence), "RRULE:")
	opt, err := rrule.StrToROptionInLocation(rule, s.cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: recurrence: %v", domain.ErrValidation, err)
	}
	opt.Dtstart = input.Start.In(s.cfg.Location)
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: recurrence: %v", domain.ErrValidation, err)
	}

	starts := make([]time.Time, 0, s.cfg.MaxRecurrence)
	next := r.Iterator()
	for len(starts) < s.cfg.MaxRecurrence {
		t, ok := next()
		if !ok {
			break
		}
		starts = append(starts, t)
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("%w: recurrence yields no occurrences", domain.ErrValidation)
	}
	return starts, nil
}

// Import creates every booking parsed from an external calendar for owner.
// Bookings that fail validation are skipped and counted.
func (s *EventService) Import(ctx context.Context, ownerID string, inputs []domain.CreateEventInput) ([]*domain.Event, int, error) {
	var created []*domain.Event
	skipped := 0
	for _, in := range inputs {
		in.OwnerID = ownerID
		if in.Title == "" {
			in.Title = "Imported booking"
		}
		events, err := s.CreateEvent(ctx, in)
		if err != nil {
			if isValidation(err) {
				skipped++
				continue
			}
			return created, skipped, err
		}
		created = append(created, events...)
	}

	s.logger.Info("calendar imported",
		logger.String("owner_id", ownerID),
		logger.Int("created", len(created)),
		logger.Int("skipped", skipped),
	)
	return created, skipped, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
		}
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}

	moved := false
	if input.Start != nil {
		event.Start = *input.Start
		moved = true
	}
	if input.End != nil {
		event.End = *input.End
		moved = true
	}
	if moved {
		if err = s.validateInterval(event.Start, event.End); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	if moved {
		event.Status = freshStatus(event, now, s.cfg.EndingSoonWindow)
	}
	event.UpdatedAt = now

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// Reschedule moves an event to [start, end). It is the commit target of the
// interaction machine. The owner is notified once the event has stayed put
// for RescheduleNotifyDelay.
func (s *EventService) Reschedule(ctx context.Context, id string, start, end time.Time) (*domain.Event, error) {
	event, err := s.UpdateEvent(ctx, id, domain.UpdateEventInput{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event rescheduled",
		logger.String("event_id", event.ID),
		logger.String("start", event.Start.Format(time.RFC3339)),
		logger.String("end", event.End.Format(time.RFC3339)),
	)

	s.deferRescheduleNotice(ctx, event)

	return event, nil
}

// deferRescheduleNotice (re)arms the event's notice so that a gesture made of
// many commits produces one message carrying the final interval.
func (s *EventService) deferRescheduleNotice(ctx context.Context, event *domain.Event) {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()

	if prev, ok := s.notices[event.ID]; ok {
		prev.timer.Stop()
	}

	n := &rescheduleNotice{ctx: context.WithoutCancel(ctx), event: *event}
	n.timer = time.AfterFunc(s.cfg.RescheduleNotifyDelay, func() {
		s.noticeMu.Lock()
		current := s.notices[n.event.ID] == n
		if current {
			delete(s.notices, n.event.ID)
		}
		s.noticeMu.Unlock()

		if current {
			s.sendRescheduleNotice(n)
		}
	})
	s.notices[event.ID] = n
}

func (s *EventService) sendRescheduleNotice(n *rescheduleNotice) {
	s.notifyOwner(n.ctx, &n.event, func(ctx context.Context, user *domain.User) {
		s.notifier.NotifyEventRescheduled(ctx, user, &n.event)
	})
}

// FlushNotices sends every pending reschedule notice right away.
func (s *EventService) FlushNotices() {
	s.noticeMu.Lock()
	pending := make([]*rescheduleNotice, 0, len(s.notices))
	for id, n := range s.notices {
		if n.timer.Stop() {
			pending = append(pending, n)
		}
		delete(s.notices, id)
	}
	s.noticeMu.Unlock()

	for _, n := range pending {
		s.sendRescheduleNotice(n)
	}
}

// ReportCommitFailure tells the owner that a drag or resize did not stick.
func (s *EventService) ReportCommitFailure(ctx context.Context, eventID string, cause error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to get event for failure notification",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifyOwner(ctx, event, func(ctx context.Context, user *domain.User) {
		s.notifier.NotifyCommitFailed(ctx, user, event, cause.Error())
	})
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))
	return nil
}

// RefreshStatuses moves every non-terminal event to the status it should
// have now and notifies owners about the changes.
func (s *EventService) RefreshStatuses(ctx context.Context) ([]*domain.Event, error) {
	now := s.now()
	open := []domain.EventStatus{
		domain.EventStatusWaiting,
		domain.EventStatusActive,
		domain.EventStatusEndingSoon,
	}

	events, err := s.repo.ListByStatus(ctx, open)
	if err != nil {
		return nil, fmt.Errorf("list open events: %w", err)
	}

	var changed []*domain.Event
	for _, e := range events {
		next := DeriveStatus(e, now, s.cfg.EndingSoonWindow)
		if next == e.Status {
			continue
		}
		if err = s.repo.UpdateStatus(ctx, e.ID, next); err != nil {
			return changed, fmt.Errorf("update status: %w", err)
		}
		e.Status = next
		changed = append(changed, e)
	}
	observability.RecordStatusRefresh(now)

	if len(changed) > 0 {
		s.logger.Info("event statuses refreshed",
			logger.Int("count", len(changed)),
		)

		go s.notifyChanged(context.WithoutCancel(ctx), changed)
	}

	return changed, nil
}

func (s *EventService) notifyChanged(ctx context.Context, events []*domain.Event) {
	for _, e := range events {
		s.notifyOwner(ctx, e, func(ctx context.Context, user *domain.User) {
			s.notifier.NotifyStatusChanged(ctx, user, e)
		})
	}
}

func (s *EventService) notifyOwner(ctx context.Context, event *domain.Event, notify func(context.Context, *domain.User)) {
	user, err := s.userRepo.GetByID(ctx, event.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.String("event_id", event.ID),
			logger.String("owner_id", event.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}
	notify(ctx, user)
}

func isValidation(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidInterval) ||
		errors.Is(err, domain.ErrTooShort)
}
