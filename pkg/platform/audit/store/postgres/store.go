package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	txcontext "github.com/fridayblessings411-cell/AgroTour/pkg/platform/tx"
)

// Store implements audit.Store on the audit_events table. Appends join the
// caller's transaction when one is carried in ctx.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	query := `
		INSERT INTO audit_events (
			category, timestamp, action, subject, actor_id,
			request_id, height, amount, reason
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		string(event.Category),
		event.Timestamp,
		event.Action,
		event.Subject,
		event.ActorID,
		event.RequestID,
		int64(event.Height), //nolint:gosec // heights fit in BIGINT
		int64(event.Amount), //nolint:gosec // fees fit in BIGINT
		event.Reason,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

const selectColumns = `
	SELECT category, timestamp, action, subject, actor_id,
		   request_id, height, amount, reason
	FROM audit_events
`

func (s *Store) ListBySubject(ctx context.Context, subject string) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` WHERE subject = $1 ORDER BY id ASC`, subject)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListRecent returns up to limit of the most recent events, oldest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent audit events: %w", err)
	}
	defer rows.Close()
	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	slices.Reverse(events)
	return events, nil
}

func scanEvents(rows *sql.Rows) ([]audit.Event, error) {
	var events []audit.Event
	for rows.Next() {
		var (
			e              audit.Event
			category       string
			height, amount int64
		)
		if err := rows.Scan(&category, &e.Timestamp, &e.Action, &e.Subject, &e.ActorID,
			&e.RequestID, &height, &amount, &e.Reason); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Category = audit.EventCategory(category)
		e.Height = uint64(height) //nolint:gosec // written from uint64
		e.Amount = uint64(amount) //nolint:gosec // written from uint64
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
