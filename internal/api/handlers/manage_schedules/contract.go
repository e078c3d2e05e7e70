package manage_schedules

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/service/availability/models"
)

// ScheduleManager интерфейс сервиса управления недельным шаблоном
type ScheduleManager interface {
	AddScheduleEntry(ctx context.Context, data models.AddScheduleEntryData) (bool, error)
	RemoveScheduleEntry(ctx context.Context, data models.RemoveScheduleEntryData) (bool, error)
	ListScheduleEntries(ctx context.Context) ([]*domain.ScheduleEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
