package get_available_slots

import (
	"context"

	uc "github.com/TecWeb-Studio/newbodyline2/internal/usecase/get_available_slots"
)

// SlotsProvider интерфейс юзкейса выдачи доступных слотов
type SlotsProvider interface {
	GetAvailableSlots(ctx context.Context, data uc.GetAvailableSlotsData) (*uc.AvailableSlots, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
