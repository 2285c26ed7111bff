package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/calendar"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/ics"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/observability"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/service/ports"
)

const calendarName = "Tablu bookings"

// CalendarService loads the events of a visible range and hands them to the
// layout engine.
type CalendarService struct {
	repo     ports.EventStore
	settings calendar.Settings
	logger   logger.Logger
	now      func() time.Time
}

func NewCalendarService(repo ports.EventStore, settings calendar.Settings, logger logger.Logger) *CalendarService {
	return &CalendarService{
		repo:     repo,
		settings: settings.Normalize(),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *CalendarService) Settings() calendar.Settings {
	return s.settings
}

func (s *CalendarService) load(ctx context.Context, rng calendar.Range) ([]domain.Event, error) {
	from, to := rng.Bounds(s.settings.Location)
	stored, err := s.repo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]domain.Event, 0, len(stored))
	skipped := 0
	for _, e := range stored {
		if !calendar.Valid(*e) {
			skipped++
			s.logger.Warn("event with empty interval skipped",
				logger.String("event_id", e.ID),
				logger.String("start", e.Start.Format(time.RFC3339)),
				logger.String("end", e.End.Format(time.RFC3339)),
			)
			continue
		}
		events = append(events, *e)
	}
	observability.RecordSkipped(skipped)

	return events, nil
}

func (s *CalendarService) Day(ctx context.Context, day time.Time) (calendar.DayLayout, error) {
	events, err := s.load(ctx, calendar.DayRange(day, s.settings.Location))
	if err != nil {
		return calendar.DayLayout{}, err
	}
	return calendar.Day(events, day, s.settings), nil
}

func (s *CalendarService) Week(ctx context.Context, day time.Time) (calendar.WeekLayout, error) {
	loc := s.settings.Location
	events, err := s.load(ctx, calendar.WeekRange(day, s.settings.WeekStart, loc))
	if err != nil {
		return calendar.WeekLayout{}, err
	}

	w := calendar.Week(events, day, s.settings)
	s.recordOverflow(w.Tracks)
	return w, nil
}

func (s *CalendarService) Month(ctx context.Context, year int, month time.Month) (calendar.MonthLayout, error) {
	loc := s.settings.Location
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	events, err := s.load(ctx, calendar.MonthGridRange(anchor, s.settings.WeekStart, loc))
	if err != nil {
		return calendar.MonthLayout{}, err
	}

	m := calendar.Month(events, anchor, s.settings)
	s.recordOverflow(m.Tracks)
	return m, nil
}

func (s *CalendarService) Year(ctx context.Context, year int) (calendar.YearLayout, error) {
	events, err := s.load(ctx, calendar.YearRange(year, s.settings.Location))
	if err != nil {
		return calendar.YearLayout{}, err
	}
	return calendar.Year(events, year, s.settings), nil
}

// Export writes the events touching [from, to] as an iCalendar feed.
func (s *CalendarService) Export(ctx context.Context, w io.Writer, from, to time.Time) error {
	events, err := s.load(ctx, calendar.Range{Start: from, End: to})
	if err != nil {
		return err
	}

	out := make([]*domain.Event, len(events))
	for i := range events {
		out[i] = &events[i]
	}
	if err = ics.Export(w, calendarName, out, s.now().UTC()); err != nil {
		return fmt.Errorf("export calendar: %w", err)
	}
	return nil
}

func (s *CalendarService) recordOverflow(a calendar.TrackAssignment) {
	if len(a.Overflow) == 0 {
		return
	}
	observability.RecordOverflow(len(a.Overflow))
	s.logger.Debug("events without a free track",
		logger.Int("count", len(a.Overflow)),
	)
}
