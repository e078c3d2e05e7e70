package manage_schedules

import "github.com/TecWeb-Studio/newbodyline2/pkg/types"

// EntryRequest тело запроса добавления или удаления слота шаблона
type EntryRequest struct {
	TrainerID string           `json:"trainerId"`
	Weekday   int              `json:"weekday"`
	Time      types.TimeString `json:"time"`
}

// EntryResponse запись недельного шаблона в ответе API
type EntryResponse struct {
	ID        int64            `json:"id"`
	TrainerID string           `json:"trainerId"`
	Weekday   int              `json:"weekday"`
	Time      types.TimeString `json:"time"`
}

// MutationResponse результат добавления или удаления
type MutationResponse struct {
	Changed bool `json:"changed"`
}

// ErrorResponse структура ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	msgInvalidBody     = "Invalid request body"
	msgInvalidWeekday  = "Weekday must be between 0 (Monday) and 6 (Sunday)"
	msgInvalidTime     = "Time must be in HH:MM format"
	msgTrainerNotFound = "Trainer not found"
	msgInternalError   = "Internal server error"
)
