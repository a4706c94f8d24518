package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pgUniqueViolation = "23505"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Колонки таблицы appointments, используемые в запросах
// Должны совпадать со схемой из migrations/001_init.sql
var (
	insertColumns = []string{
		"doctor_id",
		"specialty_id",
		"patient_id",
		"date",
		"start_time",
		"duration_minutes",
		"status",
	}

	selectColumns = []string{
		"id",
		"doctor_id",
		"specialty_id",
		"patient_id",
		"date",
		"start_time",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	}
)

// Repository репозиторий для работы с приёмами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приёмов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый приём
// Если в контексте передана активная транзакция (через dbmetrics.WithExecutor),
// использует её - это нужно для проверки пересечений и вставки в одной
// сериализуемой транзакции.
// Нарушение частичного уникального индекса (doctor_id, date, start_time)
// возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(insertColumns...).
		Values(
			appt.DoctorID,
			appt.SpecialtyID,
			appt.PatientID,
			appt.Date,
			appt.StartTime,
			appt.Duration,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		// Вторая %w сохраняет цепочку до *pq.Error: txmanager по ней
		// распознаёт serialization failure (40001) и повторяет транзакцию
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает приём по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %w", ErrScanRow, err)
	}

	return appt, nil
}

// GetByDoctorAndDate получает приёмы врача на указанную дату
// При includeInactive = false отменённые приёмы исключаются - они не занимают
// свой слот при расчёте доступности.
func (r *Repository) GetByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectAppointments().
		Where(squirrel.Eq{"doctor_id": doctorID}).
		Where(squirrel.Eq{"date": dateOnly(date)}).
		OrderBy("start_time")

	if !includeInactive {
		builder = builder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorAndDate - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDoctorAndDate - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorAndDate - iterate rows: %w", ErrExecQuery, err)
	}

	return appointments, nil
}

// selectAppointments базовый SELECT по таблице приёмов
func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).From("appointments")
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&appt.ID,
		&appt.DoctorID,
		&appt.SpecialtyID,
		&appt.PatientID,
		&appt.Date,
		&appt.StartTime,
		&appt.Duration,
		&appt.Status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// dateOnly обнуляет компонент времени, чтобы сравнение с колонкой DATE
// не зависело от времени суток в переданном значении
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
