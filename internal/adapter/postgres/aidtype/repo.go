// Package aidtype implements the aid-type catalog repository using PostgreSQL.
package aidtype

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/ksarapp/ksar-backend/internal/adapter/postgres"
	"github.com/ksarapp/ksar-backend/internal/domain"
)

// Repo provides aid-type persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new aid-type repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, label, description, created_at`

const (
	getByIDSQL = `SELECT ` + columns + ` FROM aid_types WHERE id = $1`

	listSQL = `SELECT ` + columns + ` FROM aid_types ORDER BY label`

	createSQL = `
INSERT INTO aid_types (label, description)
VALUES ($1, $2)
RETURNING ` + columns

	updateSQL = `
UPDATE aid_types
SET label       = COALESCE($2, label),
    description = CASE WHEN $3::boolean THEN $4 ELSE description END
WHERE id = $1
RETURNING ` + columns

	missingIDsSQL = `
SELECT u.id
FROM unnest($1::uuid[]) AS u(id)
WHERE NOT EXISTS (SELECT 1 FROM aid_types a WHERE a.id = u.id)`

	ensureLabelsSQL = `
INSERT INTO aid_types (label)
SELECT unnest($1::text[])
ON CONFLICT (label) DO NOTHING`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an aid type by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AidType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	at, err := scanAidType(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "aid_type", id)
	}

	return &at, nil
}

// List returns the whole catalog ordered by label.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]domain.AidType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "aid_type", "list")
	}
	defer rows.Close()

	result, err := ScanAidTypes(rows)
	if err != nil {
		return nil, postgres.MapError(err, "aid_type", "list")
	}

	return result, nil
}

// MissingIDs returns the subset of ids that do not exist in the catalog,
// in input order. An empty result means every id exists.
func (r *Repo) MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, missingIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "aid_type", "missing_ids")
	}

	missing, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "aid_type", "missing_ids")
	}

	return missing, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new aid type. The label must already be normalized.
// Returns domain.ErrAlreadyExists if the label is taken.
func (r *Repo) Create(ctx context.Context, label string, description *string) (*domain.AidType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	at, err := scanAidType(q.QueryRow(ctx, createSQL, label, description))
	if err != nil {
		return nil, postgres.MapError(err, "aid_type", label)
	}

	return &at, nil
}

// Update applies a partial update. A non-nil empty description clears it.
// Returns domain.ErrNotFound if the aid type does not exist and
// domain.ErrAlreadyExists if the new label is taken.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.AidTypeUpdateParams) (*domain.AidType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	setDescription := params.Description != nil
	var description pgtype.Text
	if setDescription && *params.Description != "" {
		description = pgtype.Text{String: *params.Description, Valid: true}
	}

	at, err := scanAidType(q.QueryRow(ctx, updateSQL, id, params.Label, setDescription, description))
	if err != nil {
		return nil, postgres.MapError(err, "aid_type", id)
	}

	return &at, nil
}

// EnsureLabels inserts every label that is not yet in the catalog and returns
// how many were added. Labels must already be normalized.
func (r *Repo) EnsureLabels(ctx context.Context, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, ensureLabelsSQL, labels)
	if err != nil {
		return 0, postgres.MapError(err, "aid_type", "ensure_labels")
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// ScanAidTypes scans rows selecting id, label, description, created_at.
// Shared with repositories that join aid_types.
func ScanAidTypes(rows pgx.Rows) ([]domain.AidType, error) {
	result := []domain.AidType{}
	for rows.Next() {
		at, err := scanAidType(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, at)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanAidType(row pgx.Row) (domain.AidType, error) {
	var (
		id          uuid.UUID
		label       string
		description pgtype.Text
		createdAt   time.Time
	)

	if err := row.Scan(&id, &label, &description, &createdAt); err != nil {
		return domain.AidType{}, fmt.Errorf("scan aid_type: %w", err)
	}

	at := domain.AidType{
		ID:        id,
		Label:     label,
		CreatedAt: createdAt,
	}
	if description.Valid {
		at.Description = &description.String
	}

	return at, nil
}
