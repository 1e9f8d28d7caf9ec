// Package activity implements the Activity ledger repository using PostgreSQL.
// It provides append-only operations for ledger records.
package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ksarapp/ksar-backend/internal/adapter/postgres"
	"github.com/ksarapp/ksar-backend/internal/domain"
)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	createSQL = `
INSERT INTO activity_logs (user_id, action, description)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	listRecentSQL = `
SELECT id, user_id, action, description, created_at
FROM activity_logs
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

	listByUserSQL = `
SELECT id, user_id, action, description, created_at
FROM activity_logs
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a ledger record. ID and CreatedAt are assigned by the store.
func (r *Repo) Create(ctx context.Context, entry domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, createSQL, entry.UserID, string(entry.Action), entry.Description).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "activity_log", entry.UserID)
	}

	return &entry, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListRecent returns ledger records across all users, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit, offset int) ([]domain.ActivityLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listRecentSQL, limit, offset)
	if err != nil {
		return nil, postgres.MapError(err, "activity_log", "recent")
	}
	defer rows.Close()

	return collect(rows, "recent")
}

// ListByUser returns ledger records of one user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ActivityLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, postgres.MapError(err, "activity_log", userID)
	}
	defer rows.Close()

	return collect(rows, userID)
}

func collect(rows pgx.Rows, id any) ([]domain.ActivityLogEntry, error) {
	result := []domain.ActivityLogEntry{}
	for rows.Next() {
		var (
			e      domain.ActivityLogEntry
			action string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &action, &e.Description, &e.CreatedAt); err != nil {
			return nil, postgres.MapError(fmt.Errorf("scan activity_log: %w", err), "activity_log", id)
		}
		e.Action = domain.ActivityAction(action)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "activity_log", id)
	}
	return result, nil
}
