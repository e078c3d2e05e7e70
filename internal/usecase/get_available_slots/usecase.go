package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	trainerRepo "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/trainer"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// UseCase выдача доступных слотов тренера на дату с ленивой материализацией.
// Слоты создаются из недельного шаблона при первом запросе даты, повторные
// запросы досинхронизируют их с актуальным шаблоном: недостающие времена
// добавляются, убранные из шаблона свободные слоты удаляются, занятые
// никогда не трогаются.
type UseCase struct {
	scheduleRepo ScheduleRepository
	slotRepo     SlotRepository
	trainerRepo  TrainerRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый юзкейс выдачи доступных слотов
func NewUseCase(
	scheduleRepo ScheduleRepository,
	slotRepo SlotRepository,
	trainerRepo TrainerRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		slotRepo:     slotRepo,
		trainerRepo:  trainerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetAvailableSlots возвращает свободные слоты тренера на дату,
// отсортированные по времени. Для дат отпуска слоты не материализуются
// и возвращается признак OnVacation. Для прошедших дат список пуст.
// Для сегодняшней даты уже начавшиеся времена отфильтровываются.
func (u *UseCase) GetAvailableSlots(ctx context.Context, data GetAvailableSlotsData) (*AvailableSlots, error) {
	if _, err := u.trainerRepo.GetByID(ctx, data.TrainerID); err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("GetAvailableSlots - get trainer: %w", err)
	}

	now := u.timeProvider.Now()
	date := domain.DateOnly(data.Date)

	if domain.IsDateInPast(date, now) {
		return &AvailableSlots{Slots: []*domain.TimeSlot{}}, nil
	}

	onVacation, err := u.scheduleRepo.HasVacationOn(ctx, data.TrainerID, date)
	if err != nil {
		return nil, fmt.Errorf("GetAvailableSlots - check vacation: %w", err)
	}
	if onVacation {
		return &AvailableSlots{Slots: []*domain.TimeSlot{}, OnVacation: true}, nil
	}

	if err := u.syncSlots(ctx, data.TrainerID, date); err != nil {
		return nil, fmt.Errorf("GetAvailableSlots - sync slots: %w", err)
	}

	slots, err := u.slotRepo.ListUnbookedByTrainerDate(ctx, data.TrainerID, date)
	if err != nil {
		return nil, fmt.Errorf("GetAvailableSlots - list slots: %w", err)
	}

	if domain.IsSameDay(date, now) {
		slots = filterStarted(slots, now)
	}

	return &AvailableSlots{Slots: slots}, nil
}

// syncSlots приводит материализованные слоты даты в соответствие
// с недельным шаблоном
func (u *UseCase) syncSlots(ctx context.Context, trainerID string, date time.Time) error {
	templateTimes, err := u.templateTimes(ctx, trainerID, domain.WeekdayIndex(date))
	if err != nil {
		return err
	}

	existing, err := u.slotRepo.ListByTrainerDate(ctx, trainerID, date)
	if err != nil {
		return fmt.Errorf("list existing slots: %w", err)
	}

	existingTimes := make(map[types.TimeString]*domain.TimeSlot, len(existing))
	for _, s := range existing {
		existingTimes[s.Time] = s
	}
	wanted := make(map[types.TimeString]struct{}, len(templateTimes))

	for _, t := range templateTimes {
		wanted[t] = struct{}{}
		if _, ok := existingTimes[t]; ok {
			continue
		}
		slot := &domain.TimeSlot{
			ID:        domain.SlotID(trainerID, date, t),
			TrainerID: trainerID,
			Date:      date,
			Time:      t,
			IsBooked:  false,
		}
		if _, err := u.slotRepo.CreateIfAbsent(ctx, slot); err != nil {
			return fmt.Errorf("materialize slot %s: %w", slot.ID, err)
		}
	}

	// Времена, убранные из шаблона: свободные слоты удаляются, занятые
	// остаются до обработки их броней
	stale := make([]types.TimeString, 0)
	for _, s := range existing {
		if _, ok := wanted[s.Time]; !ok && !s.IsBooked {
			stale = append(stale, s.Time)
		}
	}
	if len(stale) > 0 {
		removed, err := u.slotRepo.DeleteUnbookedByTrainerDateTimes(ctx, trainerID, date, stale)
		if err != nil {
			return fmt.Errorf("remove stale slots: %w", err)
		}
		if removed > 0 {
			u.logger.Info("Removed %d stale slots for trainer %s on %s", removed, trainerID, date.Format(domain.DateFormat))
		}
	}

	return nil
}

// templateTimes возвращает времена шаблона тренера на день недели.
// Тренер без единой записи шаблона получает дефолтную сетку, чтобы
// новый тренер был бронируем сразу. Пустой день у настроенного
// тренера остаётся пустым: это его выходной.
func (u *UseCase) templateTimes(ctx context.Context, trainerID string, weekday int) ([]types.TimeString, error) {
	entries, err := u.scheduleRepo.ListEntriesByTrainerWeekday(ctx, trainerID, weekday)
	if err != nil {
		return nil, fmt.Errorf("list template entries: %w", err)
	}
	if len(entries) > 0 {
		times := make([]types.TimeString, 0, len(entries))
		for _, e := range entries {
			times = append(times, e.Time)
		}
		return times, nil
	}

	hasAny, err := u.scheduleRepo.HasEntriesForTrainer(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("check trainer entries: %w", err)
	}
	if hasAny {
		return nil, nil
	}

	u.logger.Warn("Trainer %s has no schedule template, using default times", trainerID)
	return domain.DefaultScheduleTimes, nil
}

func filterStarted(slots []*domain.TimeSlot, now time.Time) []*domain.TimeSlot {
	nowMinutes := now.Hour()*60 + now.Minute()
	filtered := make([]*domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.StartsAfterMinute(nowMinutes) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
