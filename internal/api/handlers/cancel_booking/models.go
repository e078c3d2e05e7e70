package cancel_booking

// CancelResponse структура успешного ответа
type CancelResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse структура ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	msgMissingID       = "Query parameter 'id' is required"
	msgBookingNotFound = "Booking not found"
	msgInternalError   = "Internal server error"
)
