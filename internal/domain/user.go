package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff member known to the external auth collaborator.
// The core only references users; it never creates or authenticates them.
type User struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Role      UserRole
	CreatedAt time.Time
}

// Actor is the acting identity attached to every core operation.
type Actor struct {
	UserID uuid.UUID
	Role   UserRole
}

// IsAdmin reports whether the actor holds the elevated role.
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
