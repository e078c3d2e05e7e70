package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmailMatches(t *testing.T) {
	b := &Booking{ClientEmail: "Anna.Rossi@example.com"}

	assert.True(t, b.EmailMatches("anna.rossi@example.com"))
	assert.True(t, b.EmailMatches("  ANNA.ROSSI@EXAMPLE.COM  "))
	assert.False(t, b.EmailMatches("other@example.com"))
	assert.False(t, b.EmailMatches(""))
}

func TestHoldsSlot(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).HoldsSlot())
	assert.True(t, (&Booking{Status: StatusConfirmed}).HoldsSlot())
	assert.False(t, (&Booking{Status: StatusRejected}).HoldsSlot())
}

func TestValidTransitionAction(t *testing.T) {
	action, ok := ValidTransitionAction("approve")
	assert.True(t, ok)
	assert.Equal(t, ActionApprove, action)

	action, ok = ValidTransitionAction("reject")
	assert.True(t, ok)
	assert.Equal(t, ActionReject, action)

	_, ok = ValidTransitionAction("cancel")
	assert.False(t, ok)
	_, ok = ValidTransitionAction("")
	assert.False(t, ok)
}

func TestNewBookingID(t *testing.T) {
	id := NewBookingID()
	assert.True(t, strings.HasPrefix(id, "booking-"))
	assert.NotEqual(t, id, NewBookingID())
}

func TestSlotID(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "elena-petrova-2025-03-07-09:00", SlotID("elena-petrova", d, "09:00"))
}

func TestWeekdayIndex(t *testing.T) {
	// 2025-06-09 is a Monday
	for i := 0; i < 7; i++ {
		d := time.Date(2025, time.June, 9+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, i, WeekdayIndex(d), d.Weekday().String())
	}
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, time.June, 10, 23, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), now))
	// Today is never in the past, even late in the evening
	assert.False(t, IsDateInPast(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC), now))
}

func TestVacationCovers(t *testing.T) {
	v := &VacationRange{
		StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, v.Covers(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, v.Covers(time.Date(2025, time.July, 14, 23, 0, 0, 0, time.UTC)))
	assert.False(t, v.Covers(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, v.Covers(time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)))
}
