package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor is the authenticated identity attached to every request.
type Actor struct {
	ID    uuid.UUID
	Admin bool
}

// CanManage is the owner-or-admin policy applied to every state-changing
// operation on a user-owned resource.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.Admin || a.ID == ownerID
}
