package create_booking

import (
	"context"
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
)

// TrainerRepository интерфейс справочника тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
}

// SlotRepository интерфейс хранилища слотов
type SlotRepository interface {
	CreateIfAbsent(ctx context.Context, s *domain.TimeSlot) (bool, error)
	Reserve(ctx context.Context, id string) error
}

// BookingRepository интерфейс хранилища броней
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки WhatsApp уведомлений
type Notifier interface {
	NotifyBookingRequested(ctx context.Context, details whatsapp.BookingDetails, trainerPhone *string)
	NotifyBookingConfirmed(ctx context.Context, details whatsapp.BookingDetails)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
