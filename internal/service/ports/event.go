package ports

import (
	"context"
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

type EventStore interface {
	Create(ctx context.Context, e *domain.Event) error
	CreateBatch(ctx context.Context, events []*domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	// ListBetween returns events that start before to and end at or after from.
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error)
	ListByStatus(ctx context.Context, statuses []domain.EventStatus) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error
	Delete(ctx context.Context, id string) error
}
