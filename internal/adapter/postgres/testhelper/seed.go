package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the plain "user" role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates a user with the "admin" role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:       uuid.New(),
		Email:    "volunteer-" + suffix + "@example.org",
		FullName: "Volunteer " + suffix,
		Role:     role,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (id, email, full_name, role) VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		user.ID, user.Email, user.FullName, string(user.Role),
	).Scan(&user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// Actor returns the acting identity of a seeded user.
func Actor(u domain.User) domain.Actor {
	return domain.Actor{UserID: u.ID, Role: u.Role}
}

// SeedPerson creates a person living in city. An empty city stores NULL.
func SeedPerson(t *testing.T, pool *pgxpool.Pool, city string) domain.Person {
	t.Helper()

	suffix := uniqueSuffix()
	p := domain.Person{
		ID:            uuid.New(),
		FullName:      "Beneficiary " + suffix,
		HouseholdSize: domain.DefaultHouseholdSize,
	}
	if city != "" {
		p.City = &city
	}
	phone := "+216-" + suffix
	p.Phone = &phone

	err := pool.QueryRow(context.Background(),
		`INSERT INTO people (id, full_name, phone, city, household_size)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		p.ID, p.FullName, p.Phone, p.City, p.HouseholdSize,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPerson: %v", err)
	}

	return p
}

// SeedAidType creates an aid type with a unique label derived from prefix.
func SeedAidType(t *testing.T, pool *pgxpool.Pool, prefix string) domain.AidType {
	t.Helper()

	at := domain.AidType{
		ID:    uuid.New(),
		Label: prefix + " " + uniqueSuffix(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO aid_types (id, label) VALUES ($1, $2) RETURNING created_at`,
		at.ID, at.Label,
	).Scan(&at.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAidType: %v", err)
	}

	return at
}

// SeedCase creates a case in status "new" with default urgency and contact method.
func SeedCase(t *testing.T, pool *pgxpool.Pool, personID, createdBy uuid.UUID) domain.Case {
	t.Helper()

	c := domain.Case{
		ID:            uuid.New(),
		PersonID:      personID,
		Status:        domain.CaseStatusNew,
		Urgency:       domain.UrgencyNormal,
		ContactMethod: domain.ContactMethodCall,
		Description:   "seeded case " + uniqueSuffix(),
		CreatedBy:     createdBy,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO cases (id, person_id, status, urgency, contact_method, description, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		c.ID, c.PersonID, string(c.Status), string(c.Urgency), string(c.ContactMethod), c.Description, c.CreatedBy,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCase: %v", err)
	}

	return c
}

// LinkAidType links an aid type to a case directly.
func LinkAidType(t *testing.T, pool *pgxpool.Pool, caseID, aidTypeID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO case_aid_types (case_id, aid_type_id) VALUES ($1, $2)`,
		caseID, aidTypeID,
	)
	if err != nil {
		t.Fatalf("testhelper: LinkAidType: %v", err)
	}
}

// CountRows returns the number of rows in table matching the single-column
// equality predicate column = value.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, column string, value any) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE `+column+` = $1`, value,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}

	return n
}
