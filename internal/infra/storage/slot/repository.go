package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/dbmetrics"
	"github.com/TecWeb-Studio/newbodyline2/pkg/psqlbuilder"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

// Repository репозиторий материализованных слотов расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по детерминированному ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "trainer_id", "date", "time", "is_booked").
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.TrainerID, &s.Date, &s.Time, &s.IsBooked,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListByTrainerDate получает все слоты тренера на дату (включая занятые),
// отсортированные по времени
func (r *Repository) ListByTrainerDate(ctx context.Context, trainerID string, date time.Time) ([]*domain.TimeSlot, error) {
	return r.listByTrainerDate(ctx, trainerID, date, false, "ListByTrainerDate")
}

// ListUnbookedByTrainerDate получает свободные слоты тренера на дату,
// отсортированные по времени
func (r *Repository) ListUnbookedByTrainerDate(ctx context.Context, trainerID string, date time.Time) ([]*domain.TimeSlot, error) {
	return r.listByTrainerDate(ctx, trainerID, date, true, "ListUnbookedByTrainerDate")
}

// CreateIfAbsent материализует слот, если его ещё нет. Детерминированный ID
// делает операцию идемпотентной: повторная вставка молча пропускается.
// Возвращает true при реальной вставке.
func (r *Repository) CreateIfAbsent(ctx context.Context, s *domain.TimeSlot) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("id", "trainer_id", "date", "time", "is_booked").
		Values(s.ID, s.TrainerID, s.Date, s.Time, s.IsBooked).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected > 0, nil
}

// Reserve атомарно занимает свободный слот. Условие is_booked = FALSE в
// WHERE гарантирует единственного победителя: если слот уже занят,
// запрос не затронет ни одной строки и вернётся ErrSlotAlreadyBooked.
func (r *Repository) Reserve(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("is_booked", true).
		Where(squirrel.Eq{"id": id, "is_booked": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotAlreadyBooked
	}
	return nil
}

// Release освобождает слот (при отклонении, отмене или переносе брони)
func (r *Repository) Release(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("is_booked", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// DeleteUnbookedByTrainerDateTimes удаляет свободные слоты тренера на дату
// с временами из списка. Занятые слоты никогда не удаляются.
// Возвращает число удалённых строк.
func (r *Repository) DeleteUnbookedByTrainerDateTimes(ctx context.Context, trainerID string, date time.Time, times []types.TimeString) (int64, error) {
	if len(times) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{
			"trainer_id": trainerID,
			"date":       date,
			"time":       times,
			"is_booked":  false,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedByTrainerDateTimes - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedByTrainerDateTimes - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedByTrainerDateTimes - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected, nil
}

// DeleteUnbookedByTrainerWeekdayTime удаляет свободные слоты тренера на
// заданное время во все сегодняшние и будущие даты, приходящиеся на день
// недели шаблона. Используется при удалении слота из недельного шаблона.
// ISODOW у Postgres считает понедельник единицей, наш индекс дня недели
// начинается с нуля, отсюда сдвиг на единицу.
func (r *Repository) DeleteUnbookedByTrainerWeekdayTime(ctx context.Context, trainerID string, weekday int, t types.TimeString, fromDate time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"trainer_id": trainerID, "time": t, "is_booked": false}).
		Where(squirrel.GtOrEq{"date": fromDate}).
		Where("EXTRACT(ISODOW FROM date) = ?", weekday+1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedByTrainerWeekdayTime - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedByTrainerWeekdayTime - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedByTrainerWeekdayTime - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected, nil
}

// ListDatesByTrainerWeekday возвращает даты (сегодня и позже), на которые
// у тренера уже материализованы слоты нужного дня недели. Используется
// узкой ресинхронизацией при добавлении слота в шаблон.
func (r *Repository) ListDatesByTrainerWeekday(ctx context.Context, trainerID string, weekday int, fromDate time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT date").
		From("time_slots").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Where(squirrel.GtOrEq{"date": fromDate}).
		Where("EXTRACT(ISODOW FROM date) = ?", weekday+1).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDatesByTrainerWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDatesByTrainerWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: ListDatesByTrainerWeekday - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDatesByTrainerWeekday - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

func (r *Repository) listByTrainerDate(ctx context.Context, trainerID string, date time.Time, onlyUnbooked bool, method string) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "trainer_id", "date", "time", "is_booked").
		From("time_slots").
		Where(squirrel.Eq{"trainer_id": trainerID, "date": date}).
		OrderBy("time ASC")
	if onlyUnbooked {
		builder = builder.Where(squirrel.Eq{"is_booked": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		var s domain.TimeSlot
		if err := rows.Scan(&s.ID, &s.TrainerID, &s.Date, &s.Time, &s.IsBooked); err != nil {
			return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, method, err)
		}
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return slots, nil
}
