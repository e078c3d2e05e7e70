package create_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
)

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

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) CreateIfAbsent(ctx context.Context, s *domain.TimeSlot) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *mockSlotRepo) Reserve(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

// Create настроенный через Return(nil, nil) возвращает копию входной брони
// с заполненным BookedAt, как это делает настоящий репозиторий
func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, b)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) == nil {
		created := *b
		created.BookedAt = time.Now()
		return &created, nil
	}
	return args.Get(0).(*domain.Booking), nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// spyNotifier передает уведомления через каналы, чтобы тест мог дождаться
// фоновую горутину
type spyNotifier struct {
	requested chan whatsapp.BookingDetails
	confirmed chan whatsapp.BookingDetails
}

func newSpyNotifier() *spyNotifier {
	return &spyNotifier{
		requested: make(chan whatsapp.BookingDetails, 1),
		confirmed: make(chan whatsapp.BookingDetails, 1),
	}
}

func (s *spyNotifier) NotifyBookingRequested(_ context.Context, details whatsapp.BookingDetails, _ *string) {
	s.requested <- details
}

func (s *spyNotifier) NotifyBookingConfirmed(_ context.Context, details whatsapp.BookingDetails) {
	s.confirmed <- details
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
