package domain

import "github.com/TecWeb-Studio/newbodyline2/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinClientNameLength = 2
	MaxClientNameLength = 100
	MinWeekday          = 0 // Monday
	MaxWeekday          = 6 // Sunday
)

// EditLockHours минимальное число часов до тренировки, при котором клиент
// ещё может перенести запись самостоятельно
const EditLockHours = 12.0

// DefaultScheduleTimes расписание по умолчанию для тренеров без настроенного
// еженедельного шаблона. Такой тренер остаётся доступным для записи
// (обратная совместимость со старыми данными).
var DefaultScheduleTimes = []types.TimeString{
	"09:00", "10:30", "12:00", "13:30",
	"15:00", "16:30", "18:00", "19:30",
}
