package bookings

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Booking, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatusFrom(ctx context.Context, id string, expected, next domain.BookingStatus) error {
	args := m.Called(ctx, id, expected, next)
	return args.Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSlotRepo struct {
	mock.Mock
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

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// spyNotifier передает уведомления через каналы, чтобы тест мог дождаться
// фоновую горутину
type spyNotifier struct {
	confirmed chan whatsapp.BookingDetails
	rejected  chan whatsapp.BookingDetails
	cancelled chan whatsapp.BookingDetails
}

func newSpyNotifier() *spyNotifier {
	return &spyNotifier{
		confirmed: make(chan whatsapp.BookingDetails, 1),
		rejected:  make(chan whatsapp.BookingDetails, 1),
		cancelled: make(chan whatsapp.BookingDetails, 1),
	}
}

func (s *spyNotifier) NotifyBookingConfirmed(_ context.Context, details whatsapp.BookingDetails) {
	s.confirmed <- details
}

func (s *spyNotifier) NotifyBookingRejected(_ context.Context, details whatsapp.BookingDetails) {
	s.rejected <- details
}

func (s *spyNotifier) NotifyBookingCancelled(_ context.Context, details whatsapp.BookingDetails, _ *string) {
	s.cancelled <- details
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
