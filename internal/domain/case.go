package domain

import (
	"time"

	"github.com/google/uuid"
)

// Case is an assistance request tracked through a status lifecycle.
type Case struct {
	ID            uuid.UUID
	PersonID      uuid.UUID
	Status        CaseStatus
	Urgency       Urgency
	ContactMethod ContactMethod
	Description   string
	Notes         *string
	AssignedTo    *uuid.UUID
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CaseDetail is a case with denormalized person fields and its aid types.
type CaseDetail struct {
	Case
	PersonName     string
	PersonPhone    *string
	PersonCity     *string
	HouseholdSize  int
	AssignedToName *string
	CreatedByName  *string
	AidTypes       []AidType
}

// CaseSummary is one row of the case list view.
type CaseSummary struct {
	Case
	PersonName  string
	PersonPhone *string
	PersonCity  *string
	// AidTypes is the comma-joined list of associated aid-type labels.
	AidTypes string
}

// CaseUpdateParams holds the fields written by a case update.
// nil means "leave unchanged".
type CaseUpdateParams struct {
	Status        *CaseStatus
	Urgency       *Urgency
	ContactMethod *ContactMethod
	Description   *string
	Notes         *string
	AssignedTo    *uuid.UUID
	ClearAssignee bool
}

// IsEmpty reports whether the params would leave the row untouched.
func (p CaseUpdateParams) IsEmpty() bool {
	return p.Status == nil && p.Urgency == nil && p.ContactMethod == nil &&
		p.Description == nil && p.Notes == nil && p.AssignedTo == nil && !p.ClearAssignee
}
