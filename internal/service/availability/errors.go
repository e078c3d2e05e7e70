package availability

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("availability.service: trainer not found")

	// ErrInvalidWeekday возвращается при дне недели вне диапазона 0..6
	ErrInvalidWeekday = errors.New("availability.service: weekday must be between 0 (Monday) and 6 (Sunday)")

	// ErrInvalidTime возвращается при времени не в формате HH:MM
	ErrInvalidTime = errors.New("availability.service: time must be in HH:MM format")

	// ErrInvalidDateRange возвращается, когда конец отпуска раньше начала
	ErrInvalidDateRange = errors.New("availability.service: vacation end date must not be before start date")

	// ErrVacationNotFound возвращается, когда отпуск не найден
	ErrVacationNotFound = errors.New("availability.service: vacation not found")
)
