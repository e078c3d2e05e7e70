package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	bookingRepo "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/booking"
	slotRepo "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/slot"
	trainerRepo "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/trainer"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
)

// UseCase самостоятельный перенос брони клиентом. Владение подтверждается
// email, перенос разрешён не позднее чем за двенадцать часов до тренировки
// и только на существующий свободный слот выбранного тренера.
// Смена слота атомарна: новый занимается и старый освобождается в одной
// транзакции, статус брони при переносе не меняется.
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	trainerRepo  TrainerRepository
	txManager    TxManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый юзкейс переноса брони
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	trainerRepo TrainerRepository,
	txManager TxManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		trainerRepo:  trainerRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RescheduleBooking переносит бронь на другой слот (и, опционально,
// к другому тренеру)
func (u *UseCase) RescheduleBooking(ctx context.Context, data RescheduleBookingData) (*domain.Booking, error) {
	b, err := u.bookingRepo.GetByIDAndEmail(ctx, data.BookingID, data.ClientEmail)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("RescheduleBooking - get booking: %w", err)
	}

	// Окно проверяется по текущему времени тренировки: когда до неё
	// меньше двенадцати часов, перенос возможен только через администратора
	now := u.timeProvider.Now()
	if !domain.WithinEditWindow(b.Date, b.Time, now) {
		return nil, ErrTooLateToChange
	}

	if data.NewSlotID == b.SlotID {
		return b, nil
	}

	// Перенос только на существующий свободный слот: произвольная пара
	// дата-время, которой нет в расписании, здесь не материализуется
	newSlot, err := u.slotRepo.GetByID(ctx, data.NewSlotID)
	if errors.Is(err, slotRepo.ErrSlotNotFound) {
		return nil, ErrSlotConflict
	}
	if err != nil {
		return nil, fmt.Errorf("RescheduleBooking - get slot: %w", err)
	}
	if newSlot.IsBooked || domain.IsDateInPast(newSlot.Date, now) {
		return nil, ErrSlotConflict
	}

	newTrainerID := b.TrainerID
	if data.NewTrainerID != nil && *data.NewTrainerID != "" {
		newTrainerID = *data.NewTrainerID
	}
	trainerChanged := newTrainerID != b.TrainerID

	if newSlot.TrainerID != newTrainerID {
		return nil, ErrSlotTrainerMismatch
	}

	newTrainer, err := u.trainerRepo.GetByID(ctx, newTrainerID)
	if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("RescheduleBooking - get trainer: %w", err)
	}

	oldTrainerID := b.TrainerID
	oldSlotID := b.SlotID
	oldDate := b.Date
	oldTime := b.Time

	updated := *b
	updated.TrainerID = newTrainer.ID
	updated.TrainerName = newTrainer.Name
	updated.SlotID = newSlot.ID
	updated.Date = newSlot.Date
	updated.Time = newSlot.Time

	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := u.slotRepo.Reserve(ctx, newSlot.ID); err != nil {
			return err
		}
		if err := u.slotRepo.Release(ctx, oldSlotID); err != nil {
			return err
		}
		return u.bookingRepo.UpdateSlot(ctx, &updated)
	})
	if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) || errors.Is(err, bookingRepo.ErrSlotTaken) {
		return nil, ErrSlotConflict
	}
	if err != nil {
		return nil, fmt.Errorf("RescheduleBooking - swap slots: %w", err)
	}

	u.logger.Info("Booking %s rescheduled: %s -> %s", b.ID, oldSlotID, newSlot.ID)

	details := whatsapp.RescheduleDetails{
		BookingID:      updated.ID,
		ClientName:     updated.ClientName,
		OldDate:        oldDate.Format(domain.DateFormat),
		OldTime:        oldTime,
		NewTrainerName: updated.TrainerName,
		NewDate:        updated.Date.Format(domain.DateFormat),
		NewTime:        updated.Time,
		TrainerChanged: trainerChanged,
	}

	var oldTrainerPhone *string
	if trainerChanged {
		oldTrainer, err := u.trainerRepo.GetByID(ctx, oldTrainerID)
		if err != nil {
			u.logger.Warn("Failed to load previous trainer %s for notification: %v", oldTrainerID, err)
		} else {
			details.OldTrainerName = oldTrainer.Name
			oldTrainerPhone = oldTrainer.Phone
		}
	}

	// Уведомления в фоне: клиент не ждёт внешнего API
	go u.notifier.NotifyBookingRescheduled(context.Background(), details, oldTrainerPhone, newTrainer.Phone)

	return &updated, nil
}
