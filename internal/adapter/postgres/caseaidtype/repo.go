// Package caseaidtype implements the case to aid-type association
// repository using PostgreSQL (the case_aid_types join table).
package caseaidtype

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ksarapp/ksar-backend/internal/adapter/postgres"
	"github.com/ksarapp/ksar-backend/internal/adapter/postgres/aidtype"
	"github.com/ksarapp/ksar-backend/internal/domain"
)

// Repo provides association persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new association repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	linkSQL = `
INSERT INTO case_aid_types (case_id, aid_type_id)
VALUES ($1, $2)
RETURNING id, case_id, aid_type_id, created_at`

	batchLinkSQL = `
INSERT INTO case_aid_types (case_id, aid_type_id)
SELECT $1::uuid, unnest($2::uuid[])
ON CONFLICT (case_id, aid_type_id) DO NOTHING
RETURNING id, case_id, aid_type_id, created_at`

	unlinkSQL = `DELETE FROM case_aid_types WHERE case_id = $1 AND aid_type_id = $2`

	listAidTypesSQL = `
SELECT a.id, a.label, a.description, a.created_at
FROM case_aid_types cat
JOIN aid_types a ON a.id = cat.aid_type_id
WHERE cat.case_id = $1
ORDER BY a.label`
)

// Link creates one association.
// Returns domain.ErrAlreadyExists if the pair is already linked and
// domain.ErrNotFound if the case or the aid type does not exist.
func (r *Repo) Link(ctx context.Context, caseID, aidTypeID uuid.UUID) (*domain.CaseAidType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	link, err := scanLink(q.QueryRow(ctx, linkSQL, caseID, aidTypeID))
	if err != nil {
		return nil, postgres.MapError(err, "case_aid_type", caseID)
	}

	return &link, nil
}

// BatchLink links every aid type to the case, skipping pairs that already
// exist. Only newly inserted associations are returned.
// The ids must be distinct.
func (r *Repo) BatchLink(ctx context.Context, caseID uuid.UUID, aidTypeIDs []uuid.UUID) ([]domain.CaseAidType, error) {
	if len(aidTypeIDs) == 0 {
		return []domain.CaseAidType{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, batchLinkSQL, caseID, aidTypeIDs)
	if err != nil {
		return nil, postgres.MapError(err, "case_aid_type", caseID)
	}
	defer rows.Close()

	result := []domain.CaseAidType{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, postgres.MapError(err, "case_aid_type", caseID)
		}
		result = append(result, link)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "case_aid_type", caseID)
	}

	return result, nil
}

// Unlink removes one association.
// Returns domain.ErrNotFound if the pair is not linked.
func (r *Repo) Unlink(ctx context.Context, caseID, aidTypeID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, unlinkSQL, caseID, aidTypeID)
	if err != nil {
		return postgres.MapError(err, "case_aid_type", caseID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("case_aid_type %s/%s: %w", caseID, aidTypeID, domain.ErrNotFound)
	}

	return nil
}

// ListAidTypes returns the aid types linked to a case ordered by label.
// Returns an empty slice (not nil) when none are linked.
func (r *Repo) ListAidTypes(ctx context.Context, caseID uuid.UUID) ([]domain.AidType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listAidTypesSQL, caseID)
	if err != nil {
		return nil, postgres.MapError(err, "case_aid_type", caseID)
	}
	defer rows.Close()

	result, err := aidtype.ScanAidTypes(rows)
	if err != nil {
		return nil, postgres.MapError(err, "case_aid_type", caseID)
	}

	return result, nil
}

func scanLink(row pgx.Row) (domain.CaseAidType, error) {
	var link domain.CaseAidType
	if err := row.Scan(&link.ID, &link.CaseID, &link.AidTypeID, &link.CreatedAt); err != nil {
		return domain.CaseAidType{}, fmt.Errorf("scan case_aid_type: %w", err)
	}
	return link, nil
}
