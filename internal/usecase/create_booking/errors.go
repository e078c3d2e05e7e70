package create_booking

import "errors"

var (
	// ErrValidation возвращается при некорректных данных клиента
	ErrValidation = errors.New("create_booking.usecase: validation failed")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("create_booking.usecase: trainer not found")

	// ErrSlotConflict возвращается, когда слот уже занят другим клиентом
	ErrSlotConflict = errors.New("create_booking.usecase: slot already booked")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_booking.usecase: date must not be in the past")

	// ErrInvalidTime возвращается при времени не в формате HH:MM
	ErrInvalidTime = errors.New("create_booking.usecase: time must be in HH:MM format")

	// ErrInvalidStatus возвращается при недопустимом начальном статусе
	ErrInvalidStatus = errors.New("create_booking.usecase: initial status must be pending or confirmed")
)
