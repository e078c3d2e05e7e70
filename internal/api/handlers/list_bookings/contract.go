package list_bookings

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
)

// BookingLister интерфейс получения списка броней
type BookingLister interface {
	List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
