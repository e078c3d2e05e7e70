package create_booking

import (
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// CreateBookingData входные данные создания брони. InitialStatus позволяет
// администратору создавать сразу подтверждённые записи; публичный
// обработчик всегда передаёт pending.
type CreateBookingData struct {
	TrainerID     string
	Date          time.Time
	Time          types.TimeString
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	InitialStatus domain.BookingStatus
}
