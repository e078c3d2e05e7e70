package get_available_slots

import (
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
)

// GetAvailableSlotsData входные данные запроса доступности
type GetAvailableSlotsData struct {
	TrainerID string
	Date      time.Time
}

// AvailableSlots результат запроса доступности
type AvailableSlots struct {
	Slots      []*domain.TimeSlot
	OnVacation bool
}
