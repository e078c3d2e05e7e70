package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	bookingRepoPkg "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/booking"
)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "booking-1",
		TrainerID:   "elena-petrova",
		TrainerName: "Elena Petrova",
		SlotID:      "elena-petrova-2025-06-11-09:00",
		Date:        time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC),
		Time:        "09:00",
		ClientName:  "Anna Rossi",
		ClientEmail: "anna@example.com",
		ClientPhone: "+39 333 123 4567",
		Status:      domain.StatusPending,
	}
}

func newTestService() (*Service, *mockBookingRepo, *mockSlotRepo, *mockTrainerRepo, *spyNotifier) {
	bookings := &mockBookingRepo{}
	slots := &mockSlotRepo{}
	trainers := &mockTrainerRepo{}
	notifier := newSpyNotifier()
	svc := NewService(bookings, slots, trainers, fakeTxManager{}, notifier, nopLogger{})
	return svc, bookings, slots, trainers, notifier
}

func TestTransition_Approve(t *testing.T) {
	svc, bookings, slots, _, notifier := newTestService()
	bookings.On("GetByID", mock.Anything, "booking-1").Return(pendingBooking(), nil)
	bookings.On("UpdateStatusFrom", mock.Anything, "booking-1", domain.StatusPending, domain.StatusConfirmed).
		Return(nil)

	b, err := svc.Transition(context.Background(), "booking-1", domain.ActionApprove)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	// Подтверждение не трогает слот: он остается занятым
	slots.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	<-notifier.confirmed
}

func TestTransition_RejectReleasesSlot(t *testing.T) {
	svc, bookings, slots, _, notifier := newTestService()
	b := pendingBooking()
	bookings.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, "booking-1", domain.StatusPending, domain.StatusRejected).
		Return(nil)
	slots.On("Release", mock.Anything, b.SlotID).Return(nil)

	updated, err := svc.Transition(context.Background(), "booking-1", domain.ActionReject)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, updated.Status)
	slots.AssertExpectations(t)
	<-notifier.rejected
}

func TestTransition_AlreadyProcessed(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()
	confirmed := pendingBooking()
	confirmed.Status = domain.StatusConfirmed
	bookings.On("GetByID", mock.Anything, "booking-1").Return(confirmed, nil)

	_, err := svc.Transition(context.Background(), "booking-1", domain.ActionApprove)

	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	bookings.AssertNotCalled(t, "UpdateStatusFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_ConcurrentDecisionLoses(t *testing.T) {
	// Между чтением и переходом бронь обработал кто-то другой
	svc, bookings, _, _, _ := newTestService()
	bookings.On("GetByID", mock.Anything, "booking-1").Return(pendingBooking(), nil)
	bookings.On("UpdateStatusFrom", mock.Anything, "booking-1", domain.StatusPending, domain.StatusConfirmed).
		Return(bookingRepoPkg.ErrStatusConflict)

	_, err := svc.Transition(context.Background(), "booking-1", domain.ActionApprove)

	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestTransition_NotFound(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()
	bookings.On("GetByID", mock.Anything, "missing").Return(nil, bookingRepoPkg.ErrBookingNotFound)

	_, err := svc.Transition(context.Background(), "missing", domain.ActionApprove)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_DeletesBookingAndReleasesSlot(t *testing.T) {
	svc, bookings, slots, trainers, notifier := newTestService()
	b := pendingBooking()
	b.Status = domain.StatusConfirmed
	bookings.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
	bookings.On("Delete", mock.Anything, "booking-1").Return(nil)
	slots.On("Release", mock.Anything, b.SlotID).Return(nil)
	phone := "+39 333 111 2201"
	trainers.On("GetByID", mock.Anything, "elena-petrova").
		Return(&domain.Trainer{ID: "elena-petrova", Phone: &phone}, nil)

	err := svc.Cancel(context.Background(), "booking-1")

	require.NoError(t, err)
	bookings.AssertExpectations(t)
	slots.AssertExpectations(t)
	<-notifier.cancelled
}

func TestCancel_NotFound(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()
	bookings.On("GetByID", mock.Anything, "missing").Return(nil, bookingRepoPkg.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByIDAndEmail_WrongEmailLooksLikeNotFound(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", "other@example.com").
		Return(nil, bookingRepoPkg.ErrBookingNotFound)

	_, err := svc.GetByIDAndEmail(context.Background(), "booking-1", "other@example.com")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_PassesStatusFilter(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()
	pending := domain.StatusPending
	bookings.On("List", mock.Anything, &pending).Return([]*domain.Booking{pendingBooking()}, nil)

	list, err := svc.List(context.Background(), &pending)

	require.NoError(t, err)
	assert.Len(t, list, 1)
}
