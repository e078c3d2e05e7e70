package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	trainerRepo "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/trainer"
	"github.com/TecWeb-Studio/newbodyline2/internal/service/availability/models"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

func newTestService(now time.Time) (*Service, *mockScheduleRepo, *mockSlotRepo, *mockTrainerRepo) {
	schedules := new(mockScheduleRepo)
	slots := new(mockSlotRepo)
	trainers := new(mockTrainerRepo)
	svc := NewService(schedules, slots, trainers, fixedTime{now: now}, nopLogger{})
	return svc, schedules, slots, trainers
}

func TestAddScheduleEntry_InvalidWeekday(t *testing.T) {
	svc, _, _, _ := newTestService(time.Now())

	for _, weekday := range []int{-1, 7} {
		_, err := svc.AddScheduleEntry(context.Background(), models.AddScheduleEntryData{
			TrainerID: "elena-petrova",
			Weekday:   weekday,
			Time:      types.TimeString("09:00"),
		})
		assert.ErrorIs(t, err, ErrInvalidWeekday)
	}
}

func TestAddScheduleEntry_InvalidTime(t *testing.T) {
	svc, _, _, _ := newTestService(time.Now())

	_, err := svc.AddScheduleEntry(context.Background(), models.AddScheduleEntryData{
		TrainerID: "elena-petrova",
		Weekday:   2,
		Time:      types.TimeString("25:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestAddScheduleEntry_TrainerNotFound(t *testing.T) {
	svc, _, _, trainers := newTestService(time.Now())

	trainers.On("GetByID", mock.Anything, "ghost").Return(nil, trainerRepo.ErrTrainerNotFound)

	_, err := svc.AddScheduleEntry(context.Background(), models.AddScheduleEntryData{
		TrainerID: "ghost",
		Weekday:   2,
		Time:      types.TimeString("09:00"),
	})
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestAddScheduleEntry_Idempotent(t *testing.T) {
	svc, schedules, slots, trainers := newTestService(time.Now())

	trainers.On("GetByID", mock.Anything, "elena-petrova").Return(&domain.Trainer{ID: "elena-petrova"}, nil)
	schedules.On("CreateEntryIfAbsent", mock.Anything, mock.Anything).Return(false, nil)

	created, err := svc.AddScheduleEntry(context.Background(), models.AddScheduleEntryData{
		TrainerID: "elena-petrova",
		Weekday:   2,
		Time:      types.TimeString("09:00"),
	})
	require.NoError(t, err)
	assert.False(t, created)

	// Без реальной вставки ресинхронизация не запускается
	slots.AssertNotCalled(t, "ListDatesByTrainerWeekday", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddScheduleEntry_ResyncMaterializesExistingDates(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, schedules, slots, trainers := newTestService(now)

	wed1 := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	wed2 := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	trainers.On("GetByID", mock.Anything, "elena-petrova").Return(&domain.Trainer{ID: "elena-petrova"}, nil)
	schedules.On("CreateEntryIfAbsent", mock.Anything, mock.Anything).Return(true, nil)
	slots.On("ListDatesByTrainerWeekday", mock.Anything, "elena-petrova", 2, domain.DateOnly(now)).
		Return([]time.Time{wed1, wed2}, nil)
	schedules.On("HasVacationOn", mock.Anything, "elena-petrova", wed1).Return(false, nil)
	schedules.On("HasVacationOn", mock.Anything, "elena-petrova", wed2).Return(true, nil)
	slots.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(s *domain.TimeSlot) bool {
		return s.ID == "elena-petrova-2025-06-04-18:00" && !s.IsBooked
	})).Return(true, nil)

	created, err := svc.AddScheduleEntry(context.Background(), models.AddScheduleEntryData{
		TrainerID: "elena-petrova",
		Weekday:   2,
		Time:      types.TimeString("18:00"),
	})
	require.NoError(t, err)
	assert.True(t, created)

	// Дата в отпуске пропущена, материализуется только одна
	slots.AssertNumberOfCalls(t, "CreateIfAbsent", 1)
}

func TestRemoveScheduleEntry_DeletesStaleSlots(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, schedules, slots, _ := newTestService(now)

	schedules.On("DeleteEntry", mock.Anything, "elena-petrova", 2, types.TimeString("18:00")).Return(true, nil)
	slots.On("DeleteUnbookedByTrainerWeekdayTime", mock.Anything, "elena-petrova", 2, types.TimeString("18:00"), domain.DateOnly(now)).
		Return(int64(3), nil)

	deleted, err := svc.RemoveScheduleEntry(context.Background(), models.RemoveScheduleEntryData{
		TrainerID: "elena-petrova",
		Weekday:   2,
		Time:      types.TimeString("18:00"),
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	slots.AssertExpectations(t)
}

func TestRemoveScheduleEntry_Idempotent(t *testing.T) {
	svc, schedules, slots, _ := newTestService(time.Now())

	schedules.On("DeleteEntry", mock.Anything, "elena-petrova", 2, types.TimeString("18:00")).Return(false, nil)

	deleted, err := svc.RemoveScheduleEntry(context.Background(), models.RemoveScheduleEntryData{
		TrainerID: "elena-petrova",
		Weekday:   2,
		Time:      types.TimeString("18:00"),
	})
	require.NoError(t, err)
	assert.False(t, deleted)
	slots.AssertNotCalled(t, "DeleteUnbookedByTrainerWeekdayTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddVacation_EndBeforeStart(t *testing.T) {
	svc, _, _, _ := newTestService(time.Now())

	_, err := svc.AddVacation(context.Background(), models.AddVacationData{
		TrainerID: "elena-petrova",
		StartDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestAddVacation_NormalizesDates(t *testing.T) {
	svc, schedules, _, trainers := newTestService(time.Now())

	trainers.On("GetByID", mock.Anything, "elena-petrova").Return(&domain.Trainer{ID: "elena-petrova"}, nil)
	schedules.On("CreateVacation", mock.Anything, mock.MatchedBy(func(v *domain.VacationRange) bool {
		return v.StartDate.Equal(time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)) &&
			v.EndDate.Equal(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.VacationRange{
		ID:        1,
		TrainerID: "elena-petrova",
		StartDate: time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
	}, nil)

	vacation, err := svc.AddVacation(context.Background(), models.AddVacationData{
		TrainerID: "elena-petrova",
		StartDate: time.Date(2025, 7, 5, 14, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 10, 9, 15, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), vacation.ID)
}

func TestRemoveVacation_NotFound(t *testing.T) {
	svc, schedules, _, _ := newTestService(time.Now())

	schedules.On("DeleteVacation", mock.Anything, int64(42)).Return(false, nil)

	err := svc.RemoveVacation(context.Background(), 42)
	assert.ErrorIs(t, err, ErrVacationNotFound)
}
