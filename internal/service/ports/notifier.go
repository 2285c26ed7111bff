package ports

import (
	"context"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

type Notifier interface {
	NotifyCommitFailed(ctx context.Context, user *domain.User, event *domain.Event, reason string)
	NotifyEventRescheduled(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyStatusChanged(ctx context.Context, user *domain.User, event *domain.Event)
}
