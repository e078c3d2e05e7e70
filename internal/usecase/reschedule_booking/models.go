package reschedule_booking

// RescheduleBookingData входные данные переноса брони. Новый слот
// передается готовым ID: переносить можно только на уже
// материализованный свободный слот. NewTrainerID позволяет сменить
// тренера; nil оставляет текущего.
type RescheduleBookingData struct {
	BookingID    string
	ClientEmail  string
	NewSlotID    string
	NewTrainerID *string
}
