package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	bookingRepo "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/booking"
	slotRepo "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/slot"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
)

// Service сервис жизненного цикла броней: чтение, подтверждение,
// отклонение и отмена. Создание и перенос живут в отдельных юзкейсах.
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	trainerRepo TrainerRepository
	txManager   TxManager
	notifier    Notifier
	logger      Logger
}

// NewService создает новый сервис броней
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	trainerRepo TrainerRepository,
	txManager TxManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		trainerRepo: trainerRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByIDAndEmail возвращает бронь клиента. Несовпадение email
// неотличимо от отсутствия брони, чтобы не раскрывать чужие брони.
func (s *Service) GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByIDAndEmail(ctx, id, email)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByIDAndEmail - get booking: %w", err)
	}
	return b, nil
}

// List возвращает все брони, опционально отфильтрованные по статусу
func (s *Service) List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	list, err := s.bookingRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("List - list bookings: %w", err)
	}
	return list, nil
}

// Transition переводит pending бронь в confirmed или rejected.
// Переход разрешён только из pending: повторная обработка возвращает
// ErrAlreadyProcessed. Отклонение освобождает слот в той же транзакции.
func (s *Service) Transition(ctx context.Context, id string, action domain.TransitionAction) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Transition - get booking: %w", err)
	}
	if !b.IsPending() {
		return nil, ErrAlreadyProcessed
	}

	switch action {
	case domain.ActionApprove:
		err = s.bookingRepo.UpdateStatusFrom(ctx, id, domain.StatusPending, domain.StatusConfirmed)
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return nil, ErrAlreadyProcessed
		}
		if err != nil {
			return nil, fmt.Errorf("Transition - confirm booking: %w", err)
		}
		b.Status = domain.StatusConfirmed
		s.logger.Info("Booking %s confirmed", id)
		s.notifyAsync(func(ctx context.Context) {
			s.notifier.NotifyBookingConfirmed(ctx, bookingDetails(b))
		})

	case domain.ActionReject:
		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.bookingRepo.UpdateStatusFrom(ctx, id, domain.StatusPending, domain.StatusRejected); err != nil {
				return err
			}
			return s.slotRepo.Release(ctx, b.SlotID)
		})
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return nil, ErrAlreadyProcessed
		}
		if err != nil {
			return nil, fmt.Errorf("Transition - reject booking: %w", err)
		}
		b.Status = domain.StatusRejected
		s.logger.Info("Booking %s rejected, slot %s released", id, b.SlotID)
		s.notifyAsync(func(ctx context.Context) {
			s.notifier.NotifyBookingRejected(ctx, bookingDetails(b))
		})

	default:
		return nil, ErrInvalidAction
	}

	return b, nil
}

// Cancel удаляет бронь и освобождает её слот в одной транзакции.
// Статус брони не проверяется: отменить можно и подтверждённую запись.
func (s *Service) Cancel(ctx context.Context, id string) error {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("Cancel - get booking: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Delete(ctx, id); err != nil {
			return err
		}
		err := s.slotRepo.Release(ctx, b.SlotID)
		// Отклонённая бронь уже не держит слот, а у старых записей слот
		// мог быть удалён из шаблона
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Cancel - slot %s not found for booking %s", b.SlotID, id)
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("Cancel - delete booking: %w", err)
	}

	s.logger.Info("Booking %s cancelled, slot %s released", id, b.SlotID)

	trainerPhone := s.trainerPhone(ctx, b.TrainerID)
	s.notifyAsync(func(ctx context.Context) {
		s.notifier.NotifyBookingCancelled(ctx, bookingDetails(b), trainerPhone)
	})
	return nil
}

// notifyAsync отправляет уведомление в отдельной горутине: ответ клиенту
// не ждёт внешнего API, ошибки доставки только логируются.
func (s *Service) notifyAsync(fn func(ctx context.Context)) {
	go fn(context.Background())
}

func (s *Service) trainerPhone(ctx context.Context, trainerID string) *string {
	t, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		s.logger.Warn("Failed to load trainer %s for notification: %v", trainerID, err)
		return nil
	}
	return t.Phone
}

func bookingDetails(b *domain.Booking) whatsapp.BookingDetails {
	return whatsapp.BookingDetails{
		BookingID:   b.ID,
		TrainerName: b.TrainerName,
		Date:        b.Date.Format(domain.DateFormat),
		Time:        b.Time,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
	}
}
