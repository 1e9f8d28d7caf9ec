package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHouseholdSize is used when a person is registered without one.
const DefaultHouseholdSize = 1

// Person is a contact record an assistance case refers to.
type Person struct {
	ID            uuid.UUID
	FullName      string
	Phone         *string
	City          *string
	HouseholdSize int
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PersonUpdateParams holds optional fields for a partial person update.
// nil means "leave unchanged".
type PersonUpdateParams struct {
	FullName      *string
	Phone         *string
	City          *string
	HouseholdSize *int
	Notes         *string
}
