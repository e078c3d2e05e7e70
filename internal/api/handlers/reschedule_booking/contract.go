package reschedule_booking

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	uc "github.com/TecWeb-Studio/newbodyline2/internal/usecase/reschedule_booking"
)

// BookingRescheduler интерфейс юзкейса переноса брони
type BookingRescheduler interface {
	RescheduleBooking(ctx context.Context, data uc.RescheduleBookingData) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
