package domain

import (
	"time"

	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// AppointmentTime combines a booking's date and time of day into a single
// instant in the date's location.
func AppointmentTime(date time.Time, t types.TimeString) time.Time {
	minutes, err := t.MinutesOfDay()
	if err != nil {
		minutes = 0
	}
	return DateOnly(date).Add(time.Duration(minutes) * time.Minute)
}

// HoursUntil returns the number of hours between now and the appointment.
// Negative values mean the appointment is already in the past.
func HoursUntil(date time.Time, t types.TimeString, now time.Time) float64 {
	return AppointmentTime(date, t).Sub(now).Hours()
}

// WithinEditWindow reports whether a self-service change is still allowed.
// Exactly EditLockHours before the appointment is allowed; anything less is
// not. Evaluated fresh on every attempt.
func WithinEditWindow(date time.Time, t types.TimeString, now time.Time) bool {
	return HoursUntil(date, t, now) >= EditLockHours
}
