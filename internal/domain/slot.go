package domain

import (
	"fmt"
	"time"

	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// TimeSlot represents a concrete, date-stamped bookable unit derived from a
// trainer's weekly schedule. The ID is deterministic (trainer-date-time),
// which makes slot creation idempotent under concurrent materialization.
type TimeSlot struct {
	ID        string
	TrainerID string
	Date      time.Time
	Time      types.TimeString
	IsBooked  bool
}

// SlotID builds the deterministic slot identifier for a trainer, date and time.
func SlotID(trainerID string, date time.Time, t types.TimeString) string {
	return fmt.Sprintf("%s-%s-%s", trainerID, date.Format(DateFormat), t)
}

// StartsAfterMinute reports whether the slot's time of day is strictly later
// than the given minutes-since-midnight mark. Used to hide today's slots
// whose time has already passed.
func (s *TimeSlot) StartsAfterMinute(minutesOfDay int) bool {
	m, err := s.Time.MinutesOfDay()
	if err != nil {
		return false
	}
	return m > minutesOfDay
}
