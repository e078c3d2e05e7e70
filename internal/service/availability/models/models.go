package models

import (
	"time"

	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// AddScheduleEntryData данные для добавления слота недельного шаблона
type AddScheduleEntryData struct {
	TrainerID string
	Weekday   int
	Time      types.TimeString
}

// RemoveScheduleEntryData данные для удаления слота недельного шаблона
type RemoveScheduleEntryData struct {
	TrainerID string
	Weekday   int
	Time      types.TimeString
}

// AddVacationData данные для добавления отпуска тренера
type AddVacationData struct {
	TrainerID string
	StartDate time.Time
	EndDate   time.Time
	Note      *string
}
