package interaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/calendar"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

var (
	ErrSessionActive = errors.New("another drag or resize session is active")
	ErrNoSession     = errors.New("no matching session for this input")
	ErrInvalidTarget = errors.New("invalid drop target")
	ErrInvalidEdge   = errors.New("invalid resize edge")
	ErrInvalidEvent  = errors.New("event has an empty interval")
	ErrUnknownInput  = errors.New("unknown input")
	ErrEventBusy     = errors.New("event is being changed in another session")
)

const previewLayout = "15:04"

type Config struct {
	Settings calendar.Settings
	// ConfirmDrag stages dropped moves until Confirm.
	ConfirmDrag bool
	// CoalesceResize commits once on ResizeStop instead of on every move.
	CoalesceResize bool
}

// Transition is the pure state function of the interaction machine. It never
// performs I/O; the returned commits are executed by the caller. On error the
// returned state is still the one the machine must continue from.
func Transition(cfg Config, s State, in Input) (State, []Commit, error) {
	if s == nil {
		s = Idle{}
	}
	cfg.Settings = cfg.Settings.Normalize()

	switch in := in.(type) {
	case Cancel:
		return Idle{}, nil, nil

	case DragStart:
		if s.Phase() != PhaseIdle {
			return s, nil, ErrSessionActive
		}
		if !calendar.Valid(in.Event) {
			return s, nil, ErrInvalidEvent
		}
		return Dragging{Event: in.Event}, nil, nil

	case DragOver:
		if s.Phase() != PhaseDragging {
			return s, nil, ErrNoSession
		}
		return s, nil, nil

	case Drop:
		st, ok := s.(Dragging)
		if !ok {
			return s, nil, ErrNoSession
		}
		return drop(cfg, st, in.Target)

	case Confirm:
		st, ok := s.(AwaitingConfirmation)
		if !ok {
			return s, nil, ErrNoSession
		}
		return Idle{}, []Commit{{EventID: st.Event.ID, Start: st.Proposal.Start, End: st.Proposal.End}}, nil

	case ResizeStart:
		if s.Phase() != PhaseIdle {
			return s, nil, ErrSessionActive
		}
		if !in.Edge.Valid() {
			return s, nil, ErrInvalidEdge
		}
		if !calendar.Valid(in.Event) {
			return s, nil, ErrInvalidEvent
		}
		loc := cfg.Settings.Location
		anchor := in.Day
		if anchor.IsZero() {
			anchor = in.Event.Start
		}
		dayStart := calendar.StartOfDay(anchor, loc)
		if !calendar.Touches(in.Event, dayStart, loc) {
			return s, nil, ErrInvalidTarget
		}
		return Resizing{
			Event:    in.Event,
			Edge:     in.Edge,
			DayStart: dayStart,
			DayEnd:   dayStart.AddDate(0, 0, 1),
		}, nil, nil

	case ResizeMove:
		st, ok := s.(Resizing)
		if !ok {
			return s, nil, ErrNoSession
		}
		return resizeMove(cfg, st, in.HeightPx)

	case ResizeStop:
		st, ok := s.(Resizing)
		if !ok {
			return s, nil, ErrNoSession
		}
		if cfg.CoalesceResize && st.Proposal != nil {
			return Idle{}, []Commit{{EventID: st.Event.ID, Start: st.Proposal.Start, End: st.Proposal.End}}, nil
		}
		return Idle{}, nil, nil

	default:
		return s, nil, fmt.Errorf("%w: %T", ErrUnknownInput, in)
	}
}

func drop(cfg Config, st Dragging, target Target) (State, []Commit, error) {
	start, err := dropStart(st.Event, target, cfg.Settings.Location)
	if err != nil {
		return Idle{}, nil, err
	}
	if start.Equal(st.Event.Start) {
		return Idle{}, nil, nil
	}

	p := Proposal{Start: start, End: start.Add(st.Event.Duration())}
	if cfg.ConfirmDrag {
		return AwaitingConfirmation{Event: st.Event, Proposal: p}, nil, nil
	}
	return Idle{}, []Commit{{EventID: st.Event.ID, Start: p.Start, End: p.End}}, nil
}

// dropStart places the event on the target day, at the target slot when the
// target is a time-grid cell and at the original time of day otherwise.
func dropStart(e domain.Event, target Target, loc *time.Location) (time.Time, error) {
	if target.Day.IsZero() {
		return time.Time{}, ErrInvalidTarget
	}
	day := target.Day.In(loc)

	if target.HasTime {
		if target.Hour < 0 || target.Hour > 23 || target.Minute < 0 || target.Minute > 59 {
			return time.Time{}, ErrInvalidTarget
		}
		return time.Date(day.Year(), day.Month(), day.Day(), target.Hour, target.Minute, 0, 0, loc), nil
	}

	orig := e.Start.In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(),
		orig.Hour(), orig.Minute(), orig.Second(), orig.Nanosecond(), loc), nil
}

func resizeMove(cfg Config, st Resizing, heightPx float64) (State, []Commit, error) {
	m := cfg.Settings.Mapper
	d := m.DurationFromPixels(heightPx)

	// Heights are measured from the part of the event shown in the anchor
	// day's column, so the fixed edge is clipped to the day first.
	start, end := st.Event.Start, st.Event.End
	switch st.Edge {
	case EdgeTop:
		fixed := end
		if fixed.After(st.DayEnd) {
			fixed = st.DayEnd
		}
		start = fixed.Add(-d)
		if start.Before(st.DayStart) {
			start = st.DayStart
		}
		if end.Sub(start) < m.MinDuration {
			start = end.Add(-m.MinDuration)
		}
	case EdgeBottom:
		fixed := start
		if fixed.Before(st.DayStart) {
			fixed = st.DayStart
		}
		end = fixed.Add(d)
		if end.After(st.DayEnd) {
			end = st.DayEnd
		}
		if end.Sub(start) < m.MinDuration {
			end = start.Add(m.MinDuration)
		}
	}

	loc := cfg.Settings.Location
	st.Proposal = &Proposal{Start: start, End: end}
	st.Preview = &Preview{
		Start: start.In(loc).Format(previewLayout),
		End:   end.In(loc).Format(previewLayout),
	}

	if cfg.CoalesceResize {
		return st, nil, nil
	}
	return st, []Commit{{EventID: st.Event.ID, Start: start, End: end}}, nil
}
