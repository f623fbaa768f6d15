package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleTime is a recurring daily availability window of a room. Times are
// wall-clock "HH:MM" with no date; BlockMinutes is the fixed slot length a
// single reservation occupies inside the window.
type ScheduleTime struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	UserID       uuid.UUID
	StartTime    string
	EndTime      string
	BlockMinutes int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MinuteOfDay parses an "HH:MM" wall-clock string into minutes from midnight.
func MinuteOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Contains reports whether minute (minutes from midnight) falls inside the
// window, both ends inclusive. Windows with unparseable bounds never match.
func (w ScheduleTime) Contains(minute int) bool {
	start, err := MinuteOfDay(w.StartTime)
	if err != nil {
		return false
	}
	end, err := MinuteOfDay(w.EndTime)
	if err != nil {
		return false
	}
	return start <= minute && minute <= end
}

// OverlapsWindow reports whether two windows share any wall-clock time.
// Inclusive on both ends: windows that merely touch (one ends where the
// other starts) count as overlapping, matching the uniqueness rule enforced
// at window creation.
func (w ScheduleTime) OverlapsWindow(other ScheduleTime) bool {
	ws, err1 := MinuteOfDay(w.StartTime)
	we, err2 := MinuteOfDay(w.EndTime)
	os, err3 := MinuteOfDay(other.StartTime)
	oe, err4 := MinuteOfDay(other.EndTime)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return ws <= oe && os <= we
}
