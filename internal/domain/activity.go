package domain

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityLogin           ActivityType = "LOGIN"
	ActivityCreateAccount   ActivityType = "CREATE_ACCOUNT"
	ActivityCreateSchedule  ActivityType = "CREATE_SCHEDULE"
	ActivityConfirmSchedule ActivityType = "CONFIRM_SCHEDULE"
	ActivityCancelSchedule  ActivityType = "CANCEL_SCHEDULE"
)

type PageContext string

const (
	PageMyAccount PageContext = "MY_ACCOUNT"
	PageSchedule  PageContext = "SCHEDULE"
)

type ActivityLog struct {
	ID           uuid.UUID
	TypeActivity ActivityType
	Page         PageContext
	UserID       uuid.UUID
	CreatedAt    time.Time
}
