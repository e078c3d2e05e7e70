package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/dbmetrics"
	"github.com/TecWeb-Studio/newbodyline2/pkg/psqlbuilder"
)

// Код ошибки Postgres для нарушения уникального ограничения
const pqUniqueViolation = "23505"

var bookingColumns = []string{
	"id", "trainer_id", "trainer_name", "slot_id", "date", "time",
	"client_name", "client_email", "client_phone", "status", "booked_at",
}

// Repository репозиторий броней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую бронь. Уникальный индекс на slot_id служит второй
// линией защиты от двойного бронирования вдобавок к резервации слота.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id", "trainer_id", "trainer_name", "slot_id", "date", "time",
			"client_name", "client_email", "client_phone", "status",
		).
		Values(
			b.ID, b.TrainerID, b.TrainerName, b.SlotID, b.Date, b.Time,
			b.ClientName, b.ClientEmail, b.ClientPhone, b.Status,
		).
		Suffix("RETURNING booked_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *b
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.BookedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByIDAndEmail получает бронь по ID и email клиента.
// Email сравнивается без учета регистра.
func (r *Repository) GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Booking, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return r.getOne(ctx, squirrel.And{
		squirrel.Eq{"id": id},
		squirrel.Expr("LOWER(client_email) = ?", normalized),
	}, "GetByIDAndEmail")
}

// List получает все брони, отсортированные по дате и времени.
// При непустом status выборка фильтруется по статусу.
func (r *Repository) List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("date ASC", "time ASC")
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatusFrom переводит бронь из ожидаемого статуса в новый.
// Условие на текущий статус в WHERE делает переход атомарным: если бронь
// уже обработана, запрос не затронет строк и вернётся ErrStatusConflict.
func (r *Repository) UpdateStatusFrom(ctx context.Context, id string, expected, next domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", next).
		Where(squirrel.Eq{"id": id, "status": expected}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// UpdateSlot перепривязывает бронь к другому слоту при переносе.
// Статус и контакты клиента не меняются.
func (r *Repository) UpdateSlot(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("slot_id", b.SlotID).
		Set("trainer_id", b.TrainerID).
		Set("trainer_name", b.TrainerName).
		Set("date", b.Date).
		Set("time", b.Time).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateSlot - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlot - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete удаляет бронь по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Sqlizer, method string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	return b, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.TrainerID, &b.TrainerName, &b.SlotID, &b.Date, &b.Time,
		&b.ClientName, &b.ClientEmail, &b.ClientPhone, &b.Status, &b.BookedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
