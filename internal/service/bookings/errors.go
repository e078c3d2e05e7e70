package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	// (или email не совпал с email брони)
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAlreadyProcessed возвращается при попытке обработать бронь,
	// которая уже не в статусе pending
	ErrAlreadyProcessed = errors.New("bookings.service: booking already processed")

	// ErrInvalidAction возвращается при неизвестном действии перехода
	ErrInvalidAction = errors.New("bookings.service: action must be approve or reject")
)
