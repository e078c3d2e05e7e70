package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена или email
	// не совпал с email брони
	ErrBookingNotFound = errors.New("reschedule_booking.usecase: booking not found")

	// ErrTooLateToChange возвращается, когда до тренировки осталось
	// меньше двенадцати часов
	ErrTooLateToChange = errors.New("reschedule_booking.usecase: too late to change booking")

	// ErrTrainerNotFound возвращается, когда новый тренер не найден
	ErrTrainerNotFound = errors.New("reschedule_booking.usecase: trainer not found")

	// ErrSlotConflict возвращается, когда новый слот не существует,
	// уже занят или относится к прошедшей дате
	ErrSlotConflict = errors.New("reschedule_booking.usecase: slot is not available")

	// ErrSlotTrainerMismatch возвращается, когда новый слот принадлежит
	// не тому тренеру, к которому переносится бронь
	ErrSlotTrainerMismatch = errors.New("reschedule_booking.usecase: slot does not belong to the selected trainer")
)
