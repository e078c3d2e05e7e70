package create_booking

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

// UseCase создание брони с атомарной резервацией слота.
// Резервация и вставка брони выполняются в одной SERIALIZABLE транзакции:
// из конкурирующих запросов на один слот побеждает ровно один,
// остальные получают конфликт.
type UseCase struct {
	trainerRepo  TrainerRepository
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	txManager    TxManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый юзкейс создания брони
func NewUseCase(
	trainerRepo TrainerRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TxManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		trainerRepo:  trainerRepo,
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateBooking валидирует данные клиента, при необходимости материализует
// слот и атомарно занимает его новой бронью
func (u *UseCase) CreateBooking(ctx context.Context, data CreateBookingData) (*domain.Booking, error) {
	if err := u.validateCreateData(data); err != nil {
		return nil, err
	}

	trainer, err := u.trainerRepo.GetByID(ctx, data.TrainerID)
	if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("CreateBooking - get trainer: %w", err)
	}

	date := domain.DateOnly(data.Date)
	slotID := domain.SlotID(data.TrainerID, date, data.Time)

	// Прямая бронь может прийти раньше первого запроса доступности,
	// тогда слот ещё не материализован. Вставка идемпотентна.
	_, err = u.slotRepo.CreateIfAbsent(ctx, &domain.TimeSlot{
		ID:        slotID,
		TrainerID: data.TrainerID,
		Date:      date,
		Time:      data.Time,
		IsBooked:  false,
	})
	if err != nil {
		return nil, fmt.Errorf("CreateBooking - materialize slot: %w", err)
	}

	booking := &domain.Booking{
		ID:          domain.NewBookingID(),
		TrainerID:   trainer.ID,
		TrainerName: trainer.Name,
		SlotID:      slotID,
		Date:        date,
		Time:        data.Time,
		ClientName:  data.ClientName,
		ClientEmail: data.ClientEmail,
		ClientPhone: data.ClientPhone,
		Status:      data.InitialStatus,
	}

	var created *domain.Booking
	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := u.slotRepo.Reserve(ctx, slotID); err != nil {
			return err
		}
		created, err = u.bookingRepo.Create(ctx, booking)
		return err
	})
	if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) || errors.Is(err, bookingRepo.ErrSlotTaken) {
		return nil, ErrSlotConflict
	}
	if err != nil {
		return nil, fmt.Errorf("CreateBooking - reserve slot: %w", err)
	}

	u.logger.Info("Booking %s created for slot %s (status %s)", created.ID, slotID, created.Status)
	u.notify(created, trainer.Phone)

	return created, nil
}

// notify отправляет уведомления в фоне: клиент не ждёт внешнего API
func (u *UseCase) notify(b *domain.Booking, trainerPhone *string) {
	details := whatsapp.BookingDetails{
		BookingID:   b.ID,
		TrainerName: b.TrainerName,
		Date:        b.Date.Format(domain.DateFormat),
		Time:        b.Time,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
	}

	if b.IsConfirmed() {
		go u.notifier.NotifyBookingConfirmed(context.Background(), details)
		return
	}
	go u.notifier.NotifyBookingRequested(context.Background(), details, trainerPhone)
}
