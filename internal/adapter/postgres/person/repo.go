// Package person implements the Person registry repository using PostgreSQL.
package person

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

// Repo provides person persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new person repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "full_name", "phone", "city", "household_size", "notes", "created_at", "updated_at"}

const returning = "RETURNING id, full_name, phone, city, household_size, notes, created_at, updated_at"

// GetByID returns a person by primary key.
// Returns domain.ErrNotFound if the person does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("people").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build person query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanPerson(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "person", id)
	}

	return &p, nil
}

// List returns people matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PersonFilter) ([]domain.Person, error) {
	sb := postgres.Builder.
		Select(columns...).
		From("people").
		OrderBy("created_at DESC", "id")

	if filter.City != nil {
		sb = sb.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.Search != nil && *filter.Search != "" {
		sb = sb.Where(squirrel.ILike{"full_name": "%" + domain.EscapeLike(*filter.Search) + "%"})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build people query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "person", "list")
	}
	defer rows.Close()

	result := []domain.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, postgres.MapError(err, "person", "list")
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "person", "list")
	}

	return result, nil
}

// Create inserts a new person and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p domain.Person) (*domain.Person, error) {
	query, args, err := postgres.Builder.
		Insert("people").
		Columns("full_name", "phone", "city", "household_size", "notes").
		Values(p.FullName, p.Phone, p.City, p.HouseholdSize, p.Notes).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build person insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanPerson(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "person", uuid.Nil)
	}

	return &created, nil
}

// Update applies a partial update; only non-nil fields are written.
// A non-nil empty phone, city or notes clears the column.
// Returns domain.ErrNotFound if the person does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PersonUpdateParams) (*domain.Person, error) {
	ub := postgres.Builder.
		Update("people").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	if params.FullName != nil {
		ub = ub.Set("full_name", *params.FullName)
	}
	if params.Phone != nil {
		ub = ub.Set("phone", nullableText(*params.Phone))
	}
	if params.City != nil {
		ub = ub.Set("city", nullableText(*params.City))
	}
	if params.HouseholdSize != nil {
		ub = ub.Set("household_size", *params.HouseholdSize)
	}
	if params.Notes != nil {
		ub = ub.Set("notes", nullableText(*params.Notes))
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build person update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanPerson(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "person", id)
	}

	return &updated, nil
}

// Delete removes a person.
// Returns domain.ErrNotFound if the person does not exist and
// domain.ErrConflict while any case still refers to the person.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("person %s is referenced by cases: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "person", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("person %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func nullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func scanPerson(row pgx.Row) (domain.Person, error) {
	var (
		p                    domain.Person
		phone, city, notes   pgtype.Text
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&p.ID, &p.FullName, &phone, &city, &p.HouseholdSize, &notes, &createdAt, &updatedAt); err != nil {
		return domain.Person{}, fmt.Errorf("scan person: %w", err)
	}

	p.Phone = textPtr(phone)
	p.City = textPtr(city)
	p.Notes = textPtr(notes)
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt

	return p, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
