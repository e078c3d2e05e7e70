package get_booking

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
)

// BookingProvider интерфейс получения брони клиента
type BookingProvider interface {
	GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
