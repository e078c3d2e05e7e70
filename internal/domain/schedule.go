package domain

import (
	"time"

	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// ScheduleEntry represents one recurring weekly offering of a trainer:
// a (weekday, time) pair that generates concrete slots on matching dates.
// Unique per (trainer, weekday, time).
type ScheduleEntry struct {
	ID        int64
	TrainerID string
	Weekday   int // 0=Monday ... 6=Sunday
	Time      types.TimeString
}

// VacationRange represents an inclusive [StartDate, EndDate] span during
// which a trainer offers no slots. Overlapping ranges for the same trainer
// are permitted and not deduplicated.
type VacationRange struct {
	ID        int64
	TrainerID string
	StartDate time.Time
	EndDate   time.Time
	Note      *string
}

// Covers reports whether the given date falls inside the range (inclusive).
func (v *VacationRange) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(v.StartDate)) && !d.After(DateOnly(v.EndDate))
}

// WeekdayIndex converts a date to the Monday=0 ... Sunday=6 convention
// used by the weekly schedule.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether two instants fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast reports whether date is strictly before today.
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
