package transition_booking

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
)

// BookingTransitioner интерфейс обработки заявки тренером
type BookingTransitioner interface {
	Transition(ctx context.Context, id string, action domain.TransitionAction) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
