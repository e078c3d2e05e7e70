package get_available_slots

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) ListEntriesByTrainerWeekday(ctx context.Context, trainerID string, weekday int) ([]*domain.ScheduleEntry, error) {
	args := m.Called(ctx, trainerID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduleEntry), args.Error(1)
}

func (m *mockScheduleRepo) HasEntriesForTrainer(ctx context.Context, trainerID string) (bool, error) {
	args := m.Called(ctx, trainerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockScheduleRepo) HasVacationOn(ctx context.Context, trainerID string, date time.Time) (bool, error) {
	args := m.Called(ctx, trainerID, date)
	return args.Bool(0), args.Error(1)
}

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) ListByTrainerDate(ctx context.Context, trainerID string, date time.Time) ([]*domain.TimeSlot, error) {
	args := m.Called(ctx, trainerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeSlot), args.Error(1)
}

func (m *mockSlotRepo) ListUnbookedByTrainerDate(ctx context.Context, trainerID string, date time.Time) ([]*domain.TimeSlot, error) {
	args := m.Called(ctx, trainerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeSlot), args.Error(1)
}

func (m *mockSlotRepo) CreateIfAbsent(ctx context.Context, s *domain.TimeSlot) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *mockSlotRepo) DeleteUnbookedByTrainerDateTimes(ctx context.Context, trainerID string, date time.Time, times []types.TimeString) (int64, error) {
	args := m.Called(ctx, trainerID, date, times)
	return args.Get(0).(int64), args.Error(1)
}

type mockTrainerRepo struct {
	mock.Mock
}

func (m *mockTrainerRepo) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trainer), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
