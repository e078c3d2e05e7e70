package bookings

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
)

// BookingRepository интерфейс хранилища броней
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Booking, error)
	List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id string, expected, next domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

// SlotRepository интерфейс хранилища слотов
type SlotRepository interface {
	Release(ctx context.Context, id string) error
}

// TrainerRepository интерфейс справочника тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки WhatsApp уведомлений
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, details whatsapp.BookingDetails)
	NotifyBookingRejected(ctx context.Context, details whatsapp.BookingDetails)
	NotifyBookingCancelled(ctx context.Context, details whatsapp.BookingDetails, trainerPhone *string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
