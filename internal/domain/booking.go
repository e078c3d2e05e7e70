package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	// StatusPending — client-initiated request awaiting staff approval
	StatusPending BookingStatus = "pending"
	// StatusConfirmed — approved by staff, or entered directly by staff
	StatusConfirmed BookingStatus = "confirmed"
	// StatusRejected — declined by staff; the slot has been released
	StatusRejected BookingStatus = "rejected"
)

// TransitionAction staff decision over a pending booking
type TransitionAction string

const (
	ActionApprove TransitionAction = "approve"
	ActionReject  TransitionAction = "reject"
)

// Booking represents a personal-training appointment. A booking always
// references exactly one TimeSlot; that slot stays booked for the lifetime
// of a pending or confirmed booking and is released on rejection or
// cancellation.
type Booking struct {
	ID          string
	TrainerID   string
	TrainerName string
	SlotID      string
	Date        time.Time
	Time        types.TimeString
	ClientName  string
	ClientEmail string
	ClientPhone string
	Status      BookingStatus
	BookedAt    time.Time
}

// NewBookingID generates a unique booking identifier.
func NewBookingID() string {
	return "booking-" + uuid.NewString()
}

// IsPending returns true while the booking awaits a staff decision.
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true for approved or staff-entered bookings.
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// HoldsSlot reports whether the booking currently keeps its slot reserved.
func (b *Booking) HoldsSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// EmailMatches compares the stored client email with the candidate,
// case-insensitively. This is the only access control for self-service
// booking management.
func (b *Booking) EmailMatches(email string) bool {
	return strings.EqualFold(strings.TrimSpace(b.ClientEmail), strings.TrimSpace(email))
}

// ValidTransitionAction reports whether the action string is a known staff decision.
func ValidTransitionAction(action string) (TransitionAction, bool) {
	switch TransitionAction(action) {
	case ActionApprove, ActionReject:
		return TransitionAction(action), true
	}
	return "", false
}
