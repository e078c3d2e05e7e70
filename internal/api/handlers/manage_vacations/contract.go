package manage_vacations

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/service/availability/models"
)

// VacationManager интерфейс сервиса управления отпусками
type VacationManager interface {
	AddVacation(ctx context.Context, data models.AddVacationData) (*domain.VacationRange, error)
	RemoveVacation(ctx context.Context, id int64) error
	ListVacations(ctx context.Context) ([]*domain.VacationRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
