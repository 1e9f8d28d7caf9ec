package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogEntry is one record of the system-wide activity ledger.
type ActivityLogEntry struct {
	ID          int64
	UserID      uuid.UUID
	Action      ActivityAction
	Description string
	CreatedAt   time.Time
}
