package get_available_slots

import "github.com/TecWeb-Studio/newbodyline2/pkg/types"

// SlotResponse слот в ответе API
type SlotResponse struct {
	ID   string           `json:"id"`
	Time types.TimeString `json:"time"`
}

// SlotsResponse структура ответа со свободными слотами
type SlotsResponse struct {
	Slots      []SlotResponse `json:"slots"`
	OnVacation bool           `json:"onVacation"`
}

// ErrorResponse структура ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	msgMissingDate     = "Query parameter 'date' is required"
	msgInvalidDate     = "Date must be in YYYY-MM-DD format"
	msgTrainerNotFound = "Trainer not found"
	msgInternalError   = "Internal server error"
)
