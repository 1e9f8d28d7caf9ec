package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one status transition of a case. Never updated.
type HistoryEntry struct {
	ID            int64
	CaseID        uuid.UUID
	OldStatus     CaseStatus
	NewStatus     CaseStatus
	ChangedBy     uuid.UUID
	ChangedByName *string
	ChangedAt     time.Time
}

// CaseTimelineSummary combines the current case state with its history.
type CaseTimelineSummary struct {
	CaseID        uuid.UUID
	CurrentStatus CaseStatus
	Urgency       Urgency
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ChangeCount   int
	Timeline      []HistoryEntry
}
