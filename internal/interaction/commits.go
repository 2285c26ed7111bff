package interaction

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/observability"
)

type queuedCommit struct {
	ctx    context.Context
	commit Commit
}

// commitQueue applies commits one at a time per event, in the order they were
// pushed. Different events are committed concurrently.
type commitQueue struct {
	mu      sync.Mutex
	pending map[string][]queuedCommit
	wg      sync.WaitGroup

	committer Committer
	reporter  FailureReporter
	logger    logger.Logger
}

func newCommitQueue(committer Committer, reporter FailureReporter, logger logger.Logger) *commitQueue {
	return &commitQueue{
		pending:   make(map[string][]queuedCommit),
		committer: committer,
		reporter:  reporter,
		logger:    logger,
	}
}

// push queues c behind earlier commits for the same event. The commit is not
// bound to ctx's cancellation.
func (q *commitQueue) push(ctx context.Context, c Commit) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.wg.Add(1)
	queued, draining := q.pending[c.EventID]
	q.pending[c.EventID] = append(queued, queuedCommit{ctx: context.WithoutCancel(ctx), commit: c})
	if !draining {
		go q.drain(c.EventID)
	}
}

// drain owns the event's entry until the queue for it is empty.
func (q *commitQueue) drain(eventID string) {
	for {
		q.mu.Lock()
		queued := q.pending[eventID]
		if len(queued) == 0 {
			delete(q.pending, eventID)
			q.mu.Unlock()
			return
		}
		next := queued[0]
		q.pending[eventID] = queued[1:]
		q.mu.Unlock()

		q.apply(next.ctx, next.commit)
		q.wg.Done()
	}
}

func (q *commitQueue) apply(ctx context.Context, c Commit) {
	started := time.Now()
	_, err := q.committer.Reschedule(ctx, c.EventID, c.Start, c.End)
	observability.RecordCommit(err, time.Since(started))
	if err != nil {
		q.logger.Error("commit failed",
			logger.String("event_id", c.EventID),
			logger.String("error", err.Error()),
		)
		if q.reporter != nil {
			q.reporter.ReportCommitFailure(ctx, c.EventID, err)
		}
		return
	}

	q.logger.Debug("commit applied",
		logger.String("event_id", c.EventID),
		logger.String("start", c.Start.Format(time.RFC3339)),
		logger.String("end", c.End.Format(time.RFC3339)),
	)
}

// wait blocks until every commit pushed so far has been applied.
func (q *commitQueue) wait() {
	q.wg.Wait()
}
