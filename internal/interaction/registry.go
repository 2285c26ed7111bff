package interaction

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/logger"
)

// Registry keeps one Machine per client and refuses to let two clients
// manipulate the same event at once. A client's machine lives only while it
// holds a session. Commits from all clients share one queue, so they stay
// ordered per event.
type Registry struct {
	mu       sync.Mutex
	machines map[string]*Machine

	cfg     Config
	commits *commitQueue
	logger  logger.Logger
}

func NewRegistry(cfg Config, committer Committer, reporter FailureReporter, logger logger.Logger) *Registry {
	return &Registry{
		machines: make(map[string]*Machine),
		cfg:      cfg,
		commits:  newCommitQueue(committer, reporter, logger),
		logger:   logger,
	}
}

func (r *Registry) machine(client string) *Machine {
	m, ok := r.machines[client]
	if !ok {
		m = newMachine(r.cfg, r.commits, r.logger)
		r.machines[client] = m
	}
	return m
}

// Dispatch routes in to the client's machine. A machine that ends up idle is
// dropped; its commits keep running on the shared queue.
func (r *Registry) Dispatch(ctx context.Context, client string, in Input) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.machine(client)
	if id := startedEvent(in); id != "" {
		for other, om := range r.machines {
			if other != client && om.EventID() == id {
				snap := m.Snapshot()
				r.evictIdle(client, snap)
				return snap, ErrEventBusy
			}
		}
	}

	snap, err := m.Dispatch(ctx, in)
	r.evictIdle(client, snap)
	return snap, err
}

func (r *Registry) evictIdle(client string, snap Snapshot) {
	if snap.Phase == PhaseIdle {
		delete(r.machines, client)
	}
}

// Snapshot returns the client's session; unknown clients are idle.
func (r *Registry) Snapshot(client string) Snapshot {
	r.mu.Lock()
	m, ok := r.machines[client]
	r.mu.Unlock()
	if !ok {
		return Snap(Idle{})
	}
	return m.Snapshot()
}

// Close tears every session down and waits for in-flight commits.
func (r *Registry) Close(ctx context.Context) {
	r.mu.Lock()
	for client, m := range r.machines {
		m.Teardown(ctx)
		delete(r.machines, client)
	}
	r.mu.Unlock()

	r.commits.wait()
}

func startedEvent(in Input) string {
	switch in := in.(type) {
	case DragStart:
		return in.Event.ID
	case ResizeStart:
		return in.Event.ID
	}
	return ""
}
