package reschedule_booking

import (
	"context"
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
)

// BookingRepository интерфейс хранилища броней
type BookingRepository interface {
	GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Booking, error)
	UpdateSlot(ctx context.Context, b *domain.Booking) error
}

// SlotRepository интерфейс хранилища слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	Reserve(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}

// TrainerRepository интерфейс справочника тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки WhatsApp уведомлений
type Notifier interface {
	NotifyBookingRescheduled(ctx context.Context, details whatsapp.RescheduleDetails, oldTrainerPhone, newTrainerPhone *string)
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
