package reschedule_booking

import (
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// RescheduleRequest тело запроса переноса брони
type RescheduleRequest struct {
	ClientEmail  string  `json:"clientEmail"`
	NewSlotID    string  `json:"newSlotId"`
	NewTrainerID *string `json:"newTrainerId,omitempty"`
}

// BookingResponse бронь в ответе API
type BookingResponse struct {
	ID          string           `json:"id"`
	TrainerID   string           `json:"trainerId"`
	TrainerName string           `json:"trainerName"`
	SlotID      string           `json:"slotId"`
	Date        string           `json:"date"`
	Time        types.TimeString `json:"time"`
	ClientName  string           `json:"clientName"`
	ClientEmail string           `json:"clientEmail"`
	ClientPhone string           `json:"clientPhone"`
	Status      string           `json:"status"`
	BookedAt    time.Time        `json:"bookedAt"`
}

// NewBookingResponse собирает ответ API из доменной брони
func NewBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		TrainerID:   b.TrainerID,
		TrainerName: b.TrainerName,
		SlotID:      b.SlotID,
		Date:        b.Date.Format(domain.DateFormat),
		Time:        b.Time,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		ClientPhone: b.ClientPhone,
		Status:      string(b.Status),
		BookedAt:    b.BookedAt,
	}
}

// ErrorResponse структура ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

const (
	codeTooLate   = "TOO_LATE_TO_CHANGE"
	codeSlotTaken = "SLOT_TAKEN"

	msgInvalidBody      = "Invalid request body"
	msgMissingFields    = "clientEmail and newSlotId are required"
	msgBookingNotFound  = "Booking not found"
	msgTrainerNotFound  = "Trainer not found"
	msgTooLate          = "Bookings can only be changed at least 12 hours before the session"
	msgSlotNotAvailable = "The selected slot is not available"
	msgTrainerMismatch  = "Slot does not belong to the selected trainer"
	msgInternalError    = "Internal server error"
)
