package specialty

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы со специальностями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специальностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает специальность по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"appointment_duration",
		"created_at",
		"updated_at",
	).
		From("specialties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var spec domain.Specialty
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&spec.ID,
		&spec.Name,
		&spec.AppointmentDuration,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpecialtyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	spec.CreatedAt = createdAt.Time
	spec.UpdatedAt = updatedAt.Time

	return &spec, nil
}

// List получает все специальности
func (r *Repository) List(ctx context.Context) ([]*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"appointment_duration",
		"created_at",
		"updated_at",
	).
		From("specialties").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	specialties := make([]*domain.Specialty, 0)

	for rows.Next() {
		var spec domain.Specialty
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&spec.ID,
			&spec.Name,
			&spec.AppointmentDuration,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		spec.CreatedAt = createdAt.Time
		spec.UpdatedAt = updatedAt.Time

		specialties = append(specialties, &spec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return specialties, nil
}
