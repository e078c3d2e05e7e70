package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	bookingRepoPkg "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/booking"
	slotRepoPkg "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/slot"
	"github.com/TecWeb-Studio/newbodyline2/pkg/ptr"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

var (
	testNow     = time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC)
	oldDate     = time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	newDate     = time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)
	clientEmail = "anna@example.com"
)

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "booking-1",
		TrainerID:   "elena-petrova",
		TrainerName: "Elena Petrova",
		SlotID:      domain.SlotID("elena-petrova", oldDate, "09:00"),
		Date:        oldDate,
		Time:        "09:00",
		ClientName:  "Anna Rossi",
		ClientEmail: clientEmail,
		ClientPhone: "+39 333 123 4567",
		Status:      domain.StatusConfirmed,
	}
}

func freeSlot(trainerID string, date time.Time, t types.TimeString) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:        domain.SlotID(trainerID, date, t),
		TrainerID: trainerID,
		Date:      date,
		Time:      t,
		IsBooked:  false,
	}
}

func validData() RescheduleBookingData {
	return RescheduleBookingData{
		BookingID:   "booking-1",
		ClientEmail: clientEmail,
		NewSlotID:   domain.SlotID("elena-petrova", newDate, "10:30"),
	}
}

func newTestUseCase(now time.Time) (*UseCase, *mockBookingRepo, *mockSlotRepo, *mockTrainerRepo, *spyNotifier) {
	bookings := &mockBookingRepo{}
	slots := &mockSlotRepo{}
	trainers := &mockTrainerRepo{}
	notifier := newSpyNotifier()
	uc := NewUseCase(bookings, slots, trainers, fakeTxManager{}, notifier, fixedTime{now: now}, nopLogger{})
	return uc, bookings, slots, trainers, notifier
}

func TestRescheduleBooking_NotFoundOrWrongEmail(t *testing.T) {
	uc, bookings, _, _, _ := newTestUseCase(testNow)
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).
		Return(nil, bookingRepoPkg.ErrBookingNotFound)

	_, err := uc.RescheduleBooking(context.Background(), validData())

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRescheduleBooking_TooLateToChange(t *testing.T) {
	// 23:00 накануне: до тренировки в 09:00 остается 10 часов
	lateNow := time.Date(2025, time.June, 10, 23, 0, 0, 0, time.UTC)
	uc, bookings, slots, _, _ := newTestUseCase(lateNow)
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).
		Return(existingBooking(), nil)

	_, err := uc.RescheduleBooking(context.Background(), validData())

	assert.ErrorIs(t, err, ErrTooLateToChange)
	slots.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestRescheduleBooking_ExactlyTwelveHoursIsAllowed(t *testing.T) {
	boundary := time.Date(2025, time.June, 10, 21, 0, 0, 0, time.UTC)
	uc, bookings, slots, trainers, _ := newTestUseCase(boundary)
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).
		Return(existingBooking(), nil)
	trainers.On("GetByID", mock.Anything, "elena-petrova").
		Return(&domain.Trainer{ID: "elena-petrova", Name: "Elena Petrova"}, nil)
	newSlot := freeSlot("elena-petrova", newDate, "10:30")
	slots.On("GetByID", mock.Anything, newSlot.ID).Return(newSlot, nil)
	slots.On("Reserve", mock.Anything, mock.Anything).Return(nil)
	slots.On("Release", mock.Anything, mock.Anything).Return(nil)
	bookings.On("UpdateSlot", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.RescheduleBooking(context.Background(), validData())

	require.NoError(t, err)
}

func TestRescheduleBooking_SwapsSlots(t *testing.T) {
	uc, bookings, slots, trainers, notifier := newTestUseCase(testNow)
	b := existingBooking()
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).Return(b, nil)
	trainers.On("GetByID", mock.Anything, "elena-petrova").
		Return(&domain.Trainer{ID: "elena-petrova", Name: "Elena Petrova"}, nil)

	newSlot := freeSlot("elena-petrova", newDate, "10:30")
	slots.On("GetByID", mock.Anything, newSlot.ID).Return(newSlot, nil)
	slots.On("Reserve", mock.Anything, newSlot.ID).Return(nil)
	slots.On("Release", mock.Anything, b.SlotID).Return(nil)
	bookings.On("UpdateSlot", mock.Anything, mock.Anything).Return(nil)

	updated, err := uc.RescheduleBooking(context.Background(), validData())

	require.NoError(t, err)
	assert.Equal(t, newSlot.ID, updated.SlotID)
	assert.Equal(t, newDate, updated.Date)
	assert.Equal(t, types.TimeString("10:30"), updated.Time)
	// Статус при переносе не меняется
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	slots.AssertExpectations(t)

	n := <-notifier.rescheduled
	assert.False(t, n.details.TrainerChanged)
}

func TestRescheduleBooking_UnknownSlotRejected(t *testing.T) {
	uc, bookings, slots, _, _ := newTestUseCase(testNow)
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).
		Return(existingBooking(), nil)

	// Времени 03:15 нет в расписании, слот никогда не материализовывался.
	// Перенос не должен создавать его из ничего.
	phantomID := domain.SlotID("elena-petrova", newDate, "03:15")
	slots.On("GetByID", mock.Anything, phantomID).Return(nil, slotRepoPkg.ErrSlotNotFound)

	data := validData()
	data.NewSlotID = phantomID

	_, err := uc.RescheduleBooking(context.Background(), data)

	assert.ErrorIs(t, err, ErrSlotConflict)
	slots.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything)
}

func TestRescheduleBooking_BookedSlotRejected(t *testing.T) {
	uc, bookings, slots, _, _ := newTestUseCase(testNow)
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).
		Return(existingBooking(), nil)

	taken := freeSlot("elena-petrova", newDate, "10:30")
	taken.IsBooked = true
	slots.On("GetByID", mock.Anything, taken.ID).Return(taken, nil)

	_, err := uc.RescheduleBooking(context.Background(), validData())

	assert.ErrorIs(t, err, ErrSlotConflict)
	slots.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestRescheduleBooking_LosesRaceForNewSlot(t *testing.T) {
	uc, bookings, slots, trainers, _ := newTestUseCase(testNow)
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).
		Return(existingBooking(), nil)
	trainers.On("GetByID", mock.Anything, "elena-petrova").
		Return(&domain.Trainer{ID: "elena-petrova", Name: "Elena Petrova"}, nil)

	newSlot := freeSlot("elena-petrova", newDate, "10:30")
	slots.On("GetByID", mock.Anything, newSlot.ID).Return(newSlot, nil)
	slots.On("Reserve", mock.Anything, newSlot.ID).Return(slotRepoPkg.ErrSlotAlreadyBooked)

	_, err := uc.RescheduleBooking(context.Background(), validData())

	assert.ErrorIs(t, err, ErrSlotConflict)
	bookings.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything)
}

func TestRescheduleBooking_SlotOfAnotherTrainerRejected(t *testing.T) {
	uc, bookings, slots, trainers, _ := newTestUseCase(testNow)
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).
		Return(existingBooking(), nil)

	// Слот принадлежит Елене, а перенос запрошен к Марко
	elenaSlot := freeSlot("elena-petrova", newDate, "10:30")
	slots.On("GetByID", mock.Anything, elenaSlot.ID).Return(elenaSlot, nil)

	data := validData()
	data.NewTrainerID = ptr.Ptr("marco-rossi")

	_, err := uc.RescheduleBooking(context.Background(), data)

	assert.ErrorIs(t, err, ErrSlotTrainerMismatch)
	trainers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	slots.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestRescheduleBooking_TrainerChangeNotifiesBoth(t *testing.T) {
	uc, bookings, slots, trainers, notifier := newTestUseCase(testNow)
	b := existingBooking()
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).Return(b, nil)

	oldPhone := "+39 333 111 2201"
	newPhone := "+39 333 111 2202"
	trainers.On("GetByID", mock.Anything, "marco-rossi").
		Return(&domain.Trainer{ID: "marco-rossi", Name: "Marco Rossi", Phone: &newPhone}, nil)
	trainers.On("GetByID", mock.Anything, "elena-petrova").
		Return(&domain.Trainer{ID: "elena-petrova", Name: "Elena Petrova", Phone: &oldPhone}, nil)

	marcoSlot := freeSlot("marco-rossi", newDate, "10:30")
	slots.On("GetByID", mock.Anything, marcoSlot.ID).Return(marcoSlot, nil)
	slots.On("Reserve", mock.Anything, marcoSlot.ID).Return(nil)
	slots.On("Release", mock.Anything, b.SlotID).Return(nil)
	bookings.On("UpdateSlot", mock.Anything, mock.Anything).Return(nil)

	data := validData()
	data.NewSlotID = marcoSlot.ID
	data.NewTrainerID = ptr.Ptr("marco-rossi")

	updated, err := uc.RescheduleBooking(context.Background(), data)

	require.NoError(t, err)
	assert.Equal(t, "marco-rossi", updated.TrainerID)
	assert.Equal(t, "Marco Rossi", updated.TrainerName)

	n := <-notifier.rescheduled
	assert.True(t, n.details.TrainerChanged)
	assert.Equal(t, "Elena Petrova", n.details.OldTrainerName)
	require.NotNil(t, n.oldTrainerPhone)
	assert.Equal(t, oldPhone, *n.oldTrainerPhone)
	require.NotNil(t, n.newTrainerPhone)
	assert.Equal(t, newPhone, *n.newTrainerPhone)
}

func TestRescheduleBooking_SameSlotIsNoOp(t *testing.T) {
	uc, bookings, slots, _, _ := newTestUseCase(testNow)
	b := existingBooking()
	bookings.On("GetByIDAndEmail", mock.Anything, "booking-1", clientEmail).Return(b, nil)

	data := RescheduleBookingData{
		BookingID:   "booking-1",
		ClientEmail: clientEmail,
		NewSlotID:   b.SlotID,
	}

	updated, err := uc.RescheduleBooking(context.Background(), data)

	require.NoError(t, err)
	assert.Equal(t, b.SlotID, updated.SlotID)
	slots.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	slots.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}
