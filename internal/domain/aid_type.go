package domain

import (
	"time"

	"github.com/google/uuid"
)

// AidType is an entry of the aid category catalog (housing, food, ...).
type AidType struct {
	ID          uuid.UUID
	Label       string
	Description *string
	CreatedAt   time.Time
}

// AidTypeUpdateParams holds optional fields for a partial catalog update.
type AidTypeUpdateParams struct {
	Label       *string
	Description *string
}

// CaseAidType is the association between a case and one aid type.
type CaseAidType struct {
	ID        uuid.UUID
	CaseID    uuid.UUID
	AidTypeID uuid.UUID
	CreatedAt time.Time
}
