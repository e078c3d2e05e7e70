package get_booking

import (
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

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
}

const (
	msgMissingEmail    = "Query parameter 'email' is required"
	msgBookingNotFound = "Booking not found"
	msgInternalError   = "Internal server error"
)
