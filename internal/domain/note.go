package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is a free-text remark a staff member attaches to a case.
type Note struct {
	ID           uuid.UUID
	CaseID       uuid.UUID
	UserID       uuid.UUID
	UserFullName string
	Content      string
	CreatedAt    time.Time
}
