package reschedule_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Booking, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateSlot(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeSlot), args.Error(1)
}

func (m *mockSlotRepo) Reserve(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSlotRepo) Release(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type rescheduleNotification struct {
	details         whatsapp.RescheduleDetails
	oldTrainerPhone *string
	newTrainerPhone *string
}

// spyNotifier передает уведомление через канал, чтобы тест мог дождаться
// фоновую горутину
type spyNotifier struct {
	rescheduled chan rescheduleNotification
}

func newSpyNotifier() *spyNotifier {
	return &spyNotifier{rescheduled: make(chan rescheduleNotification, 1)}
}

func (s *spyNotifier) NotifyBookingRescheduled(_ context.Context, details whatsapp.RescheduleDetails, oldPhone, newPhone *string) {
	s.rescheduled <- rescheduleNotification{details: details, oldTrainerPhone: oldPhone, newTrainerPhone: newPhone}
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
