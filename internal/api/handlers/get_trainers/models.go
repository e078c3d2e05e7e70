package get_trainers

// TrainerResponse тренер в ответе API
type TrainerResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Specialty   string  `json:"specialty"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

// ErrorResponse структура ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

const msgInternalError = "Internal server error"
