// Package casefile implements the Case repository using PostgreSQL.
// It covers the case row itself plus the denormalized detail and list views.
package casefile

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/ksarapp/ksar-backend/internal/adapter/postgres"
	"github.com/ksarapp/ksar-backend/internal/domain"
)

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new case repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const caseColumns = `c.id, c.person_id, c.status, c.urgency, c.contact_method, c.description,
    c.notes, c.assigned_to, c.created_by, c.created_at, c.updated_at`

const returningCase = `RETURNING id, person_id, status, urgency, contact_method, description,
    notes, assigned_to, created_by, created_at, updated_at`

const (
	getByIDSQL = `SELECT ` + caseColumns + ` FROM cases c WHERE c.id = $1`

	getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM cases WHERE id = $1)`

	createSQL = `
INSERT INTO cases (person_id, status, urgency, contact_method, description, notes, assigned_to, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
` + returningCase

	deleteSQL = `DELETE FROM cases WHERE id = $1`

	getDetailSQL = `
SELECT ` + caseColumns + `,
    p.full_name, p.phone, p.city, p.household_size,
    ua.full_name, uc.full_name
FROM cases c
JOIN people p ON p.id = c.person_id
LEFT JOIN users ua ON ua.id = c.assigned_to
LEFT JOIN users uc ON uc.id = c.created_by
WHERE c.id = $1`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a case by primary key.
// Returns domain.ErrNotFound if the case does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	return r.getOne(ctx, getByIDSQL, id)
}

// GetForUpdate returns a case and locks its row until the surrounding
// transaction ends. Concurrent writers of the same case queue behind the lock.
// Returns domain.ErrNotFound if the case does not exist.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	return r.getOne(ctx, getForUpdateSQL, id)
}

func (r *Repo) getOne(ctx context.Context, sql string, id uuid.UUID) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCase(q.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, postgres.MapError(err, "case", id)
	}

	return &c, nil
}

// Exists reports whether a case with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "case", id)
	}

	return exists, nil
}

// GetDetail returns the case with person and staff names joined in.
// AidTypes is left empty; the caller loads associations separately.
// Returns domain.ErrNotFound if the case does not exist.
func (r *Repo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.CaseDetail, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		cr                        caseRow
		d                         domain.CaseDetail
		phone, city               pgtype.Text
		assignedName, creatorName pgtype.Text
	)

	row := q.QueryRow(ctx, getDetailSQL, id)
	err := row.Scan(append(cr.dest(),
		&d.PersonName, &phone, &city, &d.HouseholdSize,
		&assignedName, &creatorName,
	)...)
	if err != nil {
		return nil, postgres.MapError(err, "case", id)
	}

	d.Case = cr.toDomain()
	d.PersonPhone = textPtr(phone)
	d.PersonCity = textPtr(city)
	d.AssignedToName = textPtr(assignedName)
	d.CreatedByName = textPtr(creatorName)
	d.AidTypes = []domain.AidType{}

	return &d, nil
}

// List returns case summaries matching every non-nil filter field, newest
// first. Aid-type labels are joined with ", " in label order.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.CaseFilter) ([]domain.CaseSummary, error) {
	sb := postgres.Builder.
		Select(
			caseColumns,
			"p.full_name", "p.phone", "p.city",
			"COALESCE(STRING_AGG(a.label, ', ' ORDER BY a.label), '') AS aid_types",
		).
		From("cases c").
		Join("people p ON p.id = c.person_id").
		LeftJoin("case_aid_types cat ON cat.case_id = c.id").
		LeftJoin("aid_types a ON a.id = cat.aid_type_id").
		GroupBy("c.id", "p.id").
		OrderBy("c.created_at DESC", "c.id DESC")

	if filter.Status != nil {
		sb = sb.Where(squirrel.Eq{"c.status": string(*filter.Status)})
	}
	if filter.Urgency != nil {
		sb = sb.Where(squirrel.Eq{"c.urgency": string(*filter.Urgency)})
	}
	if filter.City != nil && *filter.City != "" {
		sb = sb.Where(squirrel.ILike{"p.city": "%" + domain.EscapeLike(*filter.City) + "%"})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build case list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "case", "list")
	}
	defer rows.Close()

	result := []domain.CaseSummary{}
	for rows.Next() {
		var (
			cr          caseRow
			s           domain.CaseSummary
			phone, city pgtype.Text
		)
		if err := rows.Scan(append(cr.dest(), &s.PersonName, &phone, &city, &s.AidTypes)...); err != nil {
			return nil, postgres.MapError(err, "case", "list")
		}
		s.Case = cr.toDomain()
		s.PersonPhone = textPtr(phone)
		s.PersonCity = textPtr(city)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "case", "list")
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new case and returns the persisted row.
// Returns domain.ErrNotFound if the person or a referenced user does not exist.
func (r *Repo) Create(ctx context.Context, c domain.Case) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanCase(q.QueryRow(ctx, createSQL,
		c.PersonID,
		string(c.Status),
		string(c.Urgency),
		string(c.ContactMethod),
		c.Description,
		c.Notes,
		uuidPtrToPgUUID(c.AssignedTo),
		c.CreatedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "case", c.PersonID)
	}

	return &created, nil
}

// Update writes the non-nil fields of params and bumps updated_at.
// Returns domain.ErrNotFound if the case does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CaseUpdateParams) (*domain.Case, error) {
	ub := postgres.Builder.
		Update("cases").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningCase)

	if params.Status != nil {
		ub = ub.Set("status", string(*params.Status))
	}
	if params.Urgency != nil {
		ub = ub.Set("urgency", string(*params.Urgency))
	}
	if params.ContactMethod != nil {
		ub = ub.Set("contact_method", string(*params.ContactMethod))
	}
	if params.Description != nil {
		ub = ub.Set("description", *params.Description)
	}
	if params.Notes != nil {
		if *params.Notes == "" {
			ub = ub.Set("notes", nil)
		} else {
			ub = ub.Set("notes", *params.Notes)
		}
	}
	switch {
	case params.ClearAssignee:
		ub = ub.Set("assigned_to", nil)
	case params.AssignedTo != nil:
		ub = ub.Set("assigned_to", *params.AssignedTo)
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build case update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanCase(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "case", id)
	}

	return &updated, nil
}

// Delete removes a case. Associations, history and notes go with it
// (ON DELETE CASCADE). Returns domain.ErrNotFound if the case does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "case", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("case %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type caseRow struct {
	id            uuid.UUID
	personID      uuid.UUID
	status        string
	urgency       string
	contactMethod string
	description   string
	notes         pgtype.Text
	assignedTo    pgtype.UUID
	createdBy     uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func (r *caseRow) dest() []any {
	return []any{
		&r.id, &r.personID, &r.status, &r.urgency, &r.contactMethod, &r.description,
		&r.notes, &r.assignedTo, &r.createdBy, &r.createdAt, &r.updatedAt,
	}
}

func (r *caseRow) toDomain() domain.Case {
	c := domain.Case{
		ID:            r.id,
		PersonID:      r.personID,
		Status:        domain.CaseStatus(r.status),
		Urgency:       domain.Urgency(r.urgency),
		ContactMethod: domain.ContactMethod(r.contactMethod),
		Description:   r.description,
		Notes:         textPtr(r.notes),
		CreatedBy:     r.createdBy,
		CreatedAt:     r.createdAt,
		UpdatedAt:     r.updatedAt,
	}
	if r.assignedTo.Valid {
		id := uuid.UUID(r.assignedTo.Bytes)
		c.AssignedTo = &id
	}
	return c
}

func scanCase(row pgx.Row) (domain.Case, error) {
	var cr caseRow
	if err := row.Scan(cr.dest()...); err != nil {
		return domain.Case{}, fmt.Errorf("scan case: %w", err)
	}
	return cr.toDomain(), nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
