package admin_create_booking

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	uc "github.com/TecWeb-Studio/newbodyline2/internal/usecase/create_booking"
)

// BookingCreator интерфейс юзкейса создания брони
type BookingCreator interface {
	CreateBooking(ctx context.Context, data uc.CreateBookingData) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
