package trainer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/pkg/dbmetrics"
	"github.com/TecWeb-Studio/newbodyline2/pkg/psqlbuilder"
)

// Repository репозиторий справочника тренеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateIfAbsent добавляет тренера, если его ещё нет (используется сидингом).
// Возвращает true, если строка была действительно вставлена.
func (r *Repository) CreateIfAbsent(ctx context.Context, t *domain.Trainer) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainers").
		Columns("id", "name", "specialty", "image", "description", "rating", "phone").
		Values(t.ID, t.Name, t.Specialty, t.Image, t.Description, t.Rating, t.Phone).
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

// GetByID получает тренера по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "specialty", "image", "description", "rating", "phone",
	).
		From("trainers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Trainer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.Name, &t.Specialty, &t.Image, &t.Description, &t.Rating, &t.Phone,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan trainer: %v", ErrScanRow, err)
	}

	return &t, nil
}

// List получает всех тренеров, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "specialty", "image", "description", "rating", "phone",
	).
		From("trainers").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	trainers := make([]*domain.Trainer, 0)
	for rows.Next() {
		var t domain.Trainer
		if err := rows.Scan(&t.ID, &t.Name, &t.Specialty, &t.Image, &t.Description, &t.Rating, &t.Phone); err != nil {
			return nil, fmt.Errorf("%w: List - scan trainer: %v", ErrScanRow, err)
		}
		trainers = append(trainers, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return trainers, nil
}
