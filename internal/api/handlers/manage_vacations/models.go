package manage_vacations

import "github.com/TecWeb-Studio/newbodyline2/internal/domain"

// VacationRequest тело запроса добавления отпуска
type VacationRequest struct {
	TrainerID string  `json:"trainerId"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Note      *string `json:"note,omitempty"`
}

// VacationResponse отпуск в ответе API
type VacationResponse struct {
	ID        int64   `json:"id"`
	TrainerID string  `json:"trainerId"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Note      *string `json:"note,omitempty"`
}

// NewVacationResponse собирает ответ API из доменного отпуска
func NewVacationResponse(v *domain.VacationRange) VacationResponse {
	return VacationResponse{
		ID:        v.ID,
		TrainerID: v.TrainerID,
		StartDate: v.StartDate.Format(domain.DateFormat),
		EndDate:   v.EndDate.Format(domain.DateFormat),
		Note:      v.Note,
	}
}

// DeleteResponse результат удаления отпуска
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse структура ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	msgInvalidBody      = "Invalid request body"
	msgInvalidID        = "Query parameter 'id' must be a number"
	msgInvalidDate      = "Dates must be in YYYY-MM-DD format"
	msgInvalidDateRange = "End date must not be before start date"
	msgTrainerNotFound  = "Trainer not found"
	msgVacationNotFound = "Vacation not found"
	msgInternalError    = "Internal server error"
)
