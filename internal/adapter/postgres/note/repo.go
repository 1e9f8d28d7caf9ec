// Package note implements the case Note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ksarapp/ksar-backend/internal/adapter/postgres"
	"github.com/ksarapp/ksar-backend/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	createSQL = `
WITH ins AS (
    INSERT INTO notes (case_id, user_id, content)
    VALUES ($1, $2, $3)
    RETURNING id, case_id, user_id, content, created_at
)
SELECT ins.id, ins.case_id, ins.user_id, u.full_name, ins.content, ins.created_at
FROM ins
JOIN users u ON u.id = ins.user_id`

	getByIDSQL = `
SELECT n.id, n.case_id, n.user_id, u.full_name, n.content, n.created_at
FROM notes n
JOIN users u ON u.id = n.user_id
WHERE n.id = $1`

	listByCaseSQL = `
SELECT n.id, n.case_id, n.user_id, u.full_name, n.content, n.created_at
FROM notes n
JOIN users u ON u.id = n.user_id
WHERE n.case_id = $1
ORDER BY n.created_at DESC, n.id`

	deleteSQL = `DELETE FROM notes WHERE id = $1`
)

// Create inserts a note and returns it with the author's name.
// Returns domain.ErrNotFound if the case or the author does not exist.
func (r *Repo) Create(ctx context.Context, caseID, userID uuid.UUID, content string) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := scanNote(q.QueryRow(ctx, createSQL, caseID, userID, content))
	if err != nil {
		return nil, postgres.MapError(err, "note", caseID)
	}

	return &n, nil
}

// GetByID returns a note by primary key.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := scanNote(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return &n, nil
}

// ListByCase returns the notes of a case, newest first.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByCaseSQL, caseID)
	if err != nil {
		return nil, postgres.MapError(err, "note", caseID)
	}
	defer rows.Close()

	result := []domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, postgres.MapError(err, "note", caseID)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "note", caseID)
	}

	return result, nil
}

// Delete removes a note. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanNote(row pgx.Row) (domain.Note, error) {
	var n domain.Note
	if err := row.Scan(&n.ID, &n.CaseID, &n.UserID, &n.UserFullName, &n.Content, &n.CreatedAt); err != nil {
		return domain.Note{}, fmt.Errorf("scan note: %w", err)
	}
	return n, nil
}
