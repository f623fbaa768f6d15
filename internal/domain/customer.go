package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the billing/address profile a user books under.
type Customer struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CEP        string
	Street     string
	Number     int
	Complement string
	Neighboor  string
	City       string
	State      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
