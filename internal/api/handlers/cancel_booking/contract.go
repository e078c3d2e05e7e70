package cancel_booking

import "context"

// BookingCanceller интерфейс отмены брони
type BookingCanceller interface {
	Cancel(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
