// Package history implements the append-only case status history
// repository using PostgreSQL.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/ksarapp/ksar-backend/internal/adapter/postgres"
	"github.com/ksarapp/ksar-backend/internal/domain"
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	recordSQL = `
INSERT INTO case_history (case_id, old_status, new_status, changed_by)
VALUES ($1, $2, $3, $4)
RETURNING id, changed_at`

	listByCaseSQL = `
SELECT h.id, h.case_id, h.old_status, h.new_status, h.changed_by, u.full_name, h.changed_at
FROM case_history h
LEFT JOIN users u ON u.id = h.changed_by
WHERE h.case_id = $1
ORDER BY h.changed_at DESC, h.id DESC`
)

// Record appends a transition. ID and ChangedAt are assigned by the store
// and filled into the returned entry.
func (r *Repo) Record(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, recordSQL,
		entry.CaseID, string(entry.OldStatus), string(entry.NewStatus), entry.ChangedBy,
	).Scan(&entry.ID, &entry.ChangedAt)
	if err != nil {
		return nil, postgres.MapError(err, "case_history", entry.CaseID)
	}

	return &entry, nil
}

// ListByCase returns the timeline of a case, most recent first.
// Returns an empty slice (not nil) for a case without transitions.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByCaseSQL, caseID)
	if err != nil {
		return nil, postgres.MapError(err, "case_history", caseID)
	}
	defer rows.Close()

	result := []domain.HistoryEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, "case_history", caseID)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "case_history", caseID)
	}

	return result, nil
}

func scanEntry(row pgx.Row) (domain.HistoryEntry, error) {
	var (
		e                    domain.HistoryEntry
		oldStatus, newStatus string
		changedByName        pgtype.Text
	)

	if err := row.Scan(&e.ID, &e.CaseID, &oldStatus, &newStatus, &e.ChangedBy, &changedByName, &e.ChangedAt); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("scan case_history: %w", err)
	}

	e.OldStatus = domain.CaseStatus(oldStatus)
	e.NewStatus = domain.CaseStatus(newStatus)
	if changedByName.Valid {
		e.ChangedByName = &changedByName.String
	}

	return e, nil
}
