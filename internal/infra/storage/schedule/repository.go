package schedule

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

// Repository репозиторий недельного расписания тренеров и их отпусков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateEntryIfAbsent добавляет слот недельного шаблона, если такой пары
// (тренер, день недели, время) ещё нет. Возвращает true при реальной вставке.
func (r *Repository) CreateEntryIfAbsent(ctx context.Context, entry *domain.ScheduleEntry) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainer_schedules").
		Columns("trainer_id", "weekday", "time").
		Values(entry.TrainerID, entry.Weekday, entry.Time).
		Suffix("ON CONFLICT (trainer_id, weekday, time) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CreateEntryIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateEntryIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateEntryIfAbsent - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected > 0, nil
}

// DeleteEntry удаляет слот шаблона по тройке (тренер, день недели, время).
// Возвращает true, если строка существовала и была удалена.
func (r *Repository) DeleteEntry(ctx context.Context, trainerID string, weekday int, t types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("trainer_schedules").
		Where(squirrel.Eq{"trainer_id": trainerID, "weekday": weekday, "time": t}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteEntry - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DeleteEntry - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteEntry - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected > 0, nil
}

// ListEntries получает все записи недельного шаблона, отсортированные
// по тренеру, дню недели и времени
func (r *Repository) ListEntries(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "trainer_id", "weekday", "time").
		From("trainer_schedules").
		OrderBy("trainer_id ASC", "weekday ASC", "time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEntries - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryEntries(ctx, executor, query, args, "ListEntries")
}

// ListEntriesByTrainerWeekday получает времена шаблона для тренера на заданный
// день недели, отсортированные по времени
func (r *Repository) ListEntriesByTrainerWeekday(ctx context.Context, trainerID string, weekday int) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "trainer_id", "weekday", "time").
		From("trainer_schedules").
		Where(squirrel.Eq{"trainer_id": trainerID, "weekday": weekday}).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEntriesByTrainerWeekday - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryEntries(ctx, executor, query, args, "ListEntriesByTrainerWeekday")
}

// HasEntriesForTrainer проверяет, есть ли у тренера хоть одна запись шаблона
func (r *Repository) HasEntriesForTrainer(ctx context.Context, trainerID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("trainer_schedules").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasEntriesForTrainer - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasEntriesForTrainer - scan: %v", ErrScanRow, err)
	}
	return true, nil
}

// CreateVacation добавляет диапазон отпуска тренера и возвращает его с ID
func (r *Repository) CreateVacation(ctx context.Context, v *domain.VacationRange) (*domain.VacationRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainer_vacations").
		Columns("trainer_id", "start_date", "end_date", "note").
		Values(v.TrainerID, v.StartDate, v.EndDate, v.Note).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateVacation - build insert query: %v", ErrBuildQuery, err)
	}

	created := *v
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateVacation - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// DeleteVacation удаляет отпуск по ID. Возвращает true, если строка существовала.
func (r *Repository) DeleteVacation(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("trainer_vacations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteVacation - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DeleteVacation - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteVacation - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected > 0, nil
}

// ListVacations получает все отпуска, отсортированные по тренеру и дате начала
func (r *Repository) ListVacations(ctx context.Context) ([]*domain.VacationRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "trainer_id", "start_date", "end_date", "note").
		From("trainer_vacations").
		OrderBy("trainer_id ASC", "start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListVacations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVacations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vacations := make([]*domain.VacationRange, 0)
	for rows.Next() {
		var v domain.VacationRange
		if err := rows.Scan(&v.ID, &v.TrainerID, &v.StartDate, &v.EndDate, &v.Note); err != nil {
			return nil, fmt.Errorf("%w: ListVacations - scan vacation: %v", ErrScanRow, err)
		}
		vacations = append(vacations, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVacations - rows error: %v", ErrScanRow, err)
	}

	return vacations, nil
}

// HasVacationOn проверяет, попадает ли дата в какой-либо отпуск тренера.
// Границы диапазона включительные.
func (r *Repository) HasVacationOn(ctx context.Context, trainerID string, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("trainer_vacations").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasVacationOn - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasVacationOn - scan: %v", ErrScanRow, err)
	}
	return true, nil
}

func (r *Repository) queryEntries(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) ([]*domain.ScheduleEntry, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		var entry domain.ScheduleEntry
		if err := rows.Scan(&entry.ID, &entry.TrainerID, &entry.Weekday, &entry.Time); err != nil {
			return nil, fmt.Errorf("%w: %s - scan entry: %v", ErrScanRow, method, err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return entries, nil
}
