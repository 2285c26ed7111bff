package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

const selectEvents = `
	SELECT e.id, e.title, e.description, e.start_at, e.end_at, e.status,
	       e.owner_id, COALESCE(NULLIF(u.display_name, ''), u.username, ''),
	       e.location_id, e.location_name, COALESCE(e.series_id::text, ''),
	       e.created_at, e.updated_at
	FROM events e
	LEFT JOIN users u ON u.id = e.owner_id`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var status string
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Start, &e.End, &status,
		&e.OwnerID, &e.OwnerName,
		&e.LocationID, &e.LocationName, &e.SeriesID,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	return &e, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func mapWriteError(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return domain.ErrUserNotFound
	case pgCheckViolation:
		return domain.ErrInvalidInterval
	}
	return err
}

const insertEvent = `
	INSERT INTO events (id, title, description, start_at, end_at, status,
	                    owner_id, location_id, location_name, series_id,
	                    created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func insertArgs(e *domain.Event) []any {
	return []any{
		e.ID, e.Title, e.Description, e.Start.UTC(), e.End.UTC(), string(e.Status),
		e.OwnerID, e.LocationID, e.LocationName, nullable(e.SeriesID),
		e.CreatedAt, e.UpdatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy, insertEvent, insertArgs(e)...)
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// CreateBatch inserts a recurring series atomically.
func (r *EventRepository) CreateBatch(ctx context.Context, events []*domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, e := range events {
		if _, err = tx.ExecContext(ctx, insertEvent, insertArgs(e)...); err != nil {
			if mapped := mapWriteError(err); mapped != err {
				return mapped
			}
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := selectEvents + ` WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, selectEvents+` ORDER BY e.start_at`)
}

// ListBetween returns events with start before to and end not before from.
func (r *EventRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	query := selectEvents + `
		WHERE e.start_at < $2 AND e.end_at >= $1
		ORDER BY e.start_at, e.id`
	return r.list(ctx, query, from.UTC(), to.UTC())
}

func (r *EventRepository) ListByStatus(ctx context.Context, statuses []domain.EventStatus) ([]*domain.Event, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	query := selectEvents + `
		WHERE e.status = ANY($1)
		ORDER BY e.end_at`
	return r.list(ctx, query, pq.Array(names))
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, start_at = $4, end_at = $5,
			      status = $6, updated_at = $7
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Start.UTC(), e.End.UTC(),
		string(e.Status), e.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, string(status))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
