package interaction

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/observability"
)

// Committer is the external updater commits are sent to.
type Committer interface {
	Reschedule(ctx context.Context, id string, start, end time.Time) (*domain.Event, error)
}

// FailureReporter surfaces a rejected commit to the user.
type FailureReporter interface {
	ReportCommitFailure(ctx context.Context, eventID string, err error)
}

// Machine owns one session at a time. Commits run in the background, one at
// a time per event and in the order they were produced; a failed commit is
// reported and never rolled back here.
type Machine struct {
	mu    sync.Mutex
	cfg   Config
	state State

	commits *commitQueue
	logger  logger.Logger
}

func NewMachine(cfg Config, committer Committer, reporter FailureReporter, logger logger.Logger) *Machine {
	return newMachine(cfg, newCommitQueue(committer, reporter, logger), logger)
}

func newMachine(cfg Config, commits *commitQueue, logger logger.Logger) *Machine {
	return &Machine{
		cfg:     cfg,
		state:   Idle{},
		commits: commits,
		logger:  logger,
	}
}

// Dispatch applies in to the current session and starts the resulting
// commits. The snapshot reflects the state after the transition.
func (m *Machine) Dispatch(ctx context.Context, in Input) (Snapshot, error) {
	m.mu.Lock()
	prev := m.state
	next, commits, err := Transition(m.cfg, prev, in)
	m.state = next
	snap := Snap(next)
	m.mu.Unlock()

	if prev.Phase() == PhaseIdle {
		switch next.Phase() {
		case PhaseDragging:
			observability.RecordSession("drag")
		case PhaseResizing:
			observability.RecordSession("resize")
		}
	}

	if err != nil {
		m.logger.Debug("interaction input rejected",
			logger.String("phase", string(prev.Phase())),
			logger.String("error", err.Error()),
		)
	}

	for _, c := range commits {
		m.commits.push(ctx, c)
	}

	return snap, err
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snap(m.state)
}

// EventID is the id of the event held by the current session, or "".
func (m *Machine) EventID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sessionEvent(m.state)
}

// Teardown drops whatever session is active without committing.
func (m *Machine) Teardown(ctx context.Context) {
	_, _ = m.Dispatch(ctx, Cancel{Reason: "teardown"})
}

// Wait blocks until every commit started so far has finished.
func (m *Machine) Wait() {
	m.commits.wait()
}
