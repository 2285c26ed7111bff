package interaction

import (
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

type Phase string

const (
	PhaseIdle                 Phase = "idle"
	PhaseDragging             Phase = "dragging"
	PhaseAwaitingConfirmation Phase = "awaiting_confirmation"
	PhaseResizing             Phase = "resizing"
)

// Edge is the handle grabbed in a resize gesture.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

func (e Edge) Valid() bool {
	return e == EdgeTop || e == EdgeBottom
}

// State is one of Idle, Dragging, AwaitingConfirmation or Resizing.
type State interface {
	Phase() Phase
}

type Idle struct{}

type Dragging struct {
	Event domain.Event
}

type AwaitingConfirmation struct {
	Event    domain.Event
	Proposal Proposal
}

type Resizing struct {
	Event domain.Event
	Edge  Edge
	// DayStart and DayEnd bound the anchor day; DayEnd is the next midnight.
	DayStart time.Time
	DayEnd   time.Time
	Proposal *Proposal
	Preview  *Preview
}

func (Idle) Phase() Phase                 { return PhaseIdle }
func (Dragging) Phase() Phase             { return PhaseDragging }
func (AwaitingConfirmation) Phase() Phase { return PhaseAwaitingConfirmation }
func (Resizing) Phase() Phase             { return PhaseResizing }

type Proposal struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Preview is the formatted live value shown while resizing.
type Preview struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Commit asks the external updater to move an event to [Start, End).
type Commit struct {
	EventID string
	Start   time.Time
	End     time.Time
}

// Snapshot is what the UI needs to reflect the current session.
type Snapshot struct {
	Phase    Phase     `json:"phase"`
	EventID  string    `json:"event_id,omitempty"`
	Edge     Edge      `json:"edge,omitempty"`
	Proposal *Proposal `json:"proposal,omitempty"`
	Preview  *Preview  `json:"preview,omitempty"`
}

func Snap(s State) Snapshot {
	switch st := s.(type) {
	case Dragging:
		return Snapshot{Phase: PhaseDragging, EventID: st.Event.ID}
	case AwaitingConfirmation:
		p := st.Proposal
		return Snapshot{Phase: PhaseAwaitingConfirmation, EventID: st.Event.ID, Proposal: &p}
	case Resizing:
		return Snapshot{
			Phase:    PhaseResizing,
			EventID:  st.Event.ID,
			Edge:     st.Edge,
			Proposal: st.Proposal,
			Preview:  st.Preview,
		}
	default:
		return Snapshot{Phase: PhaseIdle}
	}
}

// sessionEvent returns the id of the event held by s, or "" when idle.
func sessionEvent(s State) string {
	return Snap(s).EventID
}
