package domain

import (
	"time"

	"github.com/google/uuid"
)

type SchedulingStatus string

const (
	SchedulingStatusPending   SchedulingStatus = "PENDING"
	SchedulingStatusConfirmed SchedulingStatus = "CONFIRMED"
	SchedulingStatusCanceled  SchedulingStatus = "CANCELED"
)

// Scheduling is a time-blocked reservation of a room by a customer. StartsAt
// and EndsAt are UTC instants; EndsAt is derived from the availability window
// matched at admission and never changes afterwards.
type Scheduling struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	RoomID     uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	Status     SchedulingStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Overlaps tests half-open interval intersection of [StartsAt, EndsAt).
// Back-to-back slots do not overlap.
func (s Scheduling) Overlaps(start, end time.Time) bool {
	return s.StartsAt.Before(end) && s.EndsAt.After(start)
}
