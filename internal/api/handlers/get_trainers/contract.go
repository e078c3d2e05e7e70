package get_trainers

import (
	"context"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
)

// TrainerProvider интерфейс получения списка тренеров
type TrainerProvider interface {
	List(ctx context.Context) ([]*domain.Trainer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
