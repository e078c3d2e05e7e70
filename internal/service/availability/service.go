package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	trainerRepo "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/trainer"
	"github.com/TecWeb-Studio/newbodyline2/internal/service/availability/models"
)

// Service сервис управления недельным шаблоном расписания и отпусками.
// Изменения шаблона сразу отражаются на уже материализованных слотах:
// узкая ресинхронизация трогает только будущие свободные слоты затронутого
// тренера и дня недели, брони остаются нетронутыми.
type Service struct {
	scheduleRepo ScheduleRepository
	slotRepo     SlotRepository
	trainerRepo  TrainerRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис управления доступностью тренеров
func NewService(
	scheduleRepo ScheduleRepository,
	slotRepo SlotRepository,
	trainerRepo TrainerRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		slotRepo:     slotRepo,
		trainerRepo:  trainerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddScheduleEntry добавляет слот недельного шаблона. Операция идемпотентна:
// повторное добавление той же тройки возвращает created = false.
// При реальной вставке новый слот материализуется на все уже затронутые
// будущие даты этого дня недели, кроме дат отпуска.
func (s *Service) AddScheduleEntry(ctx context.Context, data models.AddScheduleEntryData) (bool, error) {
	if data.Weekday < domain.MinWeekday || data.Weekday > domain.MaxWeekday {
		return false, ErrInvalidWeekday
	}
	if err := data.Time.Validate(); err != nil {
		return false, ErrInvalidTime
	}
	if err := s.checkTrainer(ctx, data.TrainerID); err != nil {
		return false, err
	}

	created, err := s.scheduleRepo.CreateEntryIfAbsent(ctx, &domain.ScheduleEntry{
		TrainerID: data.TrainerID,
		Weekday:   data.Weekday,
		Time:      data.Time,
	})
	if err != nil {
		return false, fmt.Errorf("AddScheduleEntry - create entry: %w", err)
	}
	if !created {
		return false, nil
	}

	s.logger.Info("Schedule entry added: trainer %s, weekday %d, time %s", data.TrainerID, data.Weekday, data.Time)
	s.resyncAfterAdd(ctx, data)
	return true, nil
}

// RemoveScheduleEntry удаляет слот недельного шаблона. Операция идемпотентна.
// При реальном удалении соответствующие будущие свободные слоты удаляются,
// занятые остаются до обработки их броней.
func (s *Service) RemoveScheduleEntry(ctx context.Context, data models.RemoveScheduleEntryData) (bool, error) {
	if data.Weekday < domain.MinWeekday || data.Weekday > domain.MaxWeekday {
		return false, ErrInvalidWeekday
	}
	if err := data.Time.Validate(); err != nil {
		return false, ErrInvalidTime
	}

	deleted, err := s.scheduleRepo.DeleteEntry(ctx, data.TrainerID, data.Weekday, data.Time)
	if err != nil {
		return false, fmt.Errorf("RemoveScheduleEntry - delete entry: %w", err)
	}
	if !deleted {
		return false, nil
	}

	today := domain.DateOnly(s.timeProvider.Now())
	removed, err := s.slotRepo.DeleteUnbookedByTrainerWeekdayTime(ctx, data.TrainerID, data.Weekday, data.Time, today)
	if err != nil {
		// Шаблон уже изменён, слоты доберёт следующая синхронизация
		s.logger.Error("Failed to remove stale slots for trainer %s, weekday %d, time %s: %v", data.TrainerID, data.Weekday, data.Time, err)
	} else if removed > 0 {
		s.logger.Info("Removed %d stale slots for trainer %s, weekday %d, time %s", removed, data.TrainerID, data.Weekday, data.Time)
	}

	return true, nil
}

// ListScheduleEntries возвращает весь недельный шаблон
func (s *Service) ListScheduleEntries(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	entries, err := s.scheduleRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListScheduleEntries - list entries: %w", err)
	}
	return entries, nil
}

// AddVacation добавляет диапазон отпуска тренера. Границы включительные.
func (s *Service) AddVacation(ctx context.Context, data models.AddVacationData) (*domain.VacationRange, error) {
	if data.EndDate.Before(data.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if err := s.checkTrainer(ctx, data.TrainerID); err != nil {
		return nil, err
	}

	vacation, err := s.scheduleRepo.CreateVacation(ctx, &domain.VacationRange{
		TrainerID: data.TrainerID,
		StartDate: domain.DateOnly(data.StartDate),
		EndDate:   domain.DateOnly(data.EndDate),
		Note:      data.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("AddVacation - create vacation: %w", err)
	}

	s.logger.Info("Vacation added: trainer %s, %s - %s", data.TrainerID,
		vacation.StartDate.Format(domain.DateFormat), vacation.EndDate.Format(domain.DateFormat))
	return vacation, nil
}

// RemoveVacation удаляет отпуск по ID
func (s *Service) RemoveVacation(ctx context.Context, id int64) error {
	deleted, err := s.scheduleRepo.DeleteVacation(ctx, id)
	if err != nil {
		return fmt.Errorf("RemoveVacation - delete vacation: %w", err)
	}
	if !deleted {
		return ErrVacationNotFound
	}
	s.logger.Info("Vacation %d removed", id)
	return nil
}

// ListVacations возвращает все отпуска
func (s *Service) ListVacations(ctx context.Context) ([]*domain.VacationRange, error) {
	vacations, err := s.scheduleRepo.ListVacations(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListVacations - list vacations: %w", err)
	}
	return vacations, nil
}

// resyncAfterAdd материализует добавленное время на будущие даты, для которых
// слоты этого дня недели уже существуют. Даты без слотов догонит ленивая
// синхронизация при первом запросе доступности.
func (s *Service) resyncAfterAdd(ctx context.Context, data models.AddScheduleEntryData) {
	today := domain.DateOnly(s.timeProvider.Now())

	dates, err := s.slotRepo.ListDatesByTrainerWeekday(ctx, data.TrainerID, data.Weekday, today)
	if err != nil {
		s.logger.Error("Failed to list materialized dates for trainer %s, weekday %d: %v", data.TrainerID, data.Weekday, err)
		return
	}

	for _, date := range dates {
		onVacation, err := s.scheduleRepo.HasVacationOn(ctx, data.TrainerID, date)
		if err != nil {
			s.logger.Error("Failed to check vacation for trainer %s on %s: %v", data.TrainerID, date.Format(domain.DateFormat), err)
			continue
		}
		if onVacation {
			continue
		}

		slot := &domain.TimeSlot{
			ID:        domain.SlotID(data.TrainerID, date, data.Time),
			TrainerID: data.TrainerID,
			Date:      date,
			Time:      data.Time,
			IsBooked:  false,
		}
		if _, err := s.slotRepo.CreateIfAbsent(ctx, slot); err != nil {
			s.logger.Error("Failed to materialize slot %s: %v", slot.ID, err)
		}
	}
}

func (s *Service) checkTrainer(ctx context.Context, trainerID string) error {
	_, err := s.trainerRepo.GetByID(ctx, trainerID)
	if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
		return ErrTrainerNotFound
	}
	if err != nil {
		return fmt.Errorf("check trainer %s: %w", trainerID, err)
	}
	return nil
}
