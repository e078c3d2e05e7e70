package availability

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

func (m *mockScheduleRepo) CreateEntryIfAbsent(ctx context.Context, entry *domain.ScheduleEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *mockScheduleRepo) DeleteEntry(ctx context.Context, trainerID string, weekday int, t types.TimeString) (bool, error) {
	args := m.Called(ctx, trainerID, weekday, t)
	return args.Bool(0), args.Error(1)
}

func (m *mockScheduleRepo) ListEntries(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduleEntry), args.Error(1)
}

func (m *mockScheduleRepo) CreateVacation(ctx context.Context, v *domain.VacationRange) (*domain.VacationRange, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VacationRange), args.Error(1)
}

func (m *mockScheduleRepo) DeleteVacation(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockScheduleRepo) ListVacations(ctx context.Context) ([]*domain.VacationRange, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VacationRange), args.Error(1)
}

func (m *mockScheduleRepo) HasVacationOn(ctx context.Context, trainerID string, date time.Time) (bool, error) {
	args := m.Called(ctx, trainerID, date)
	return args.Bool(0), args.Error(1)
}

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) CreateIfAbsent(ctx context.Context, s *domain.TimeSlot) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *mockSlotRepo) DeleteUnbookedByTrainerWeekdayTime(ctx context.Context, trainerID string, weekday int, t types.TimeString, fromDate time.Time) (int64, error) {
	args := m.Called(ctx, trainerID, weekday, t, fromDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSlotRepo) ListDatesByTrainerWeekday(ctx context.Context, trainerID string, weekday int, fromDate time.Time) ([]time.Time, error) {
	args := m.Called(ctx, trainerID, weekday, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
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
