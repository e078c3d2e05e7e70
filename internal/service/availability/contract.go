package availability

import (
	"context"
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// ScheduleRepository интерфейс хранилища недельного шаблона и отпусков
type ScheduleRepository interface {
	CreateEntryIfAbsent(ctx context.Context, entry *domain.ScheduleEntry) (bool, error)
	DeleteEntry(ctx context.Context, trainerID string, weekday int, t types.TimeString) (bool, error)
	ListEntries(ctx context.Context) ([]*domain.ScheduleEntry, error)
	CreateVacation(ctx context.Context, v *domain.VacationRange) (*domain.VacationRange, error)
	DeleteVacation(ctx context.Context, id int64) (bool, error)
	ListVacations(ctx context.Context) ([]*domain.VacationRange, error)
	HasVacationOn(ctx context.Context, trainerID string, date time.Time) (bool, error)
}

// SlotRepository интерфейс хранилища материализованных слотов
type SlotRepository interface {
	CreateIfAbsent(ctx context.Context, s *domain.TimeSlot) (bool, error)
	DeleteUnbookedByTrainerWeekdayTime(ctx context.Context, trainerID string, weekday int, t types.TimeString, fromDate time.Time) (int64, error)
	ListDatesByTrainerWeekday(ctx context.Context, trainerID string, weekday int, fromDate time.Time) ([]time.Time, error)
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
