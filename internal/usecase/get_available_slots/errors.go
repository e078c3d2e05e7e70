package get_available_slots

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("get_available_slots.usecase: trainer not found")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("get_available_slots.usecase: date must be in YYYY-MM-DD format")
)
