package get_available_slots

import (
	"context"
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// ScheduleRepository интерфейс хранилища недельного шаблона и отпусков
type ScheduleRepository interface {
	ListEntriesByTrainerWeekday(ctx context.Context, trainerID string, weekday int) ([]*domain.ScheduleEntry, error)
	HasEntriesForTrainer(ctx context.Context, trainerID string) (bool, error)
	HasVacationOn(ctx context.Context, trainerID string, date time.Time) (bool, error)
}

// SlotRepository интерфейс хранилища материализованных слотов
type SlotRepository interface {
	ListByTrainerDate(ctx context.Context, trainerID string, date time.Time) ([]*domain.TimeSlot, error)
	ListUnbookedByTrainerDate(ctx context.Context, trainerID string, date time.Time) ([]*domain.TimeSlot, error)
	CreateIfAbsent(ctx context.Context, s *domain.TimeSlot) (bool, error)
	DeleteUnbookedByTrainerDateTimes(ctx context.Context, trainerID string, date time.Time, times []types.TimeString) (int64, error)
}

// TrainerRepository интерфейс справочника тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
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
