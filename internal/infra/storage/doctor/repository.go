package doctor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с врачами
// Врач хранится в трёх таблицах: doctors, doctor_specialties (связь many-to-many
// со специальностями) и doctor_working_hours (недельное расписание).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает врача по ID вместе с расписанием и специальностями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	doctors, err := r.selectDoctors(ctx, executor, squirrel.Eq{"d.id": id})
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrDoctorNotFound
	}

	return doctors[0], nil
}

// List получает всех врачей
func (r *Repository) List(ctx context.Context) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	return r.selectDoctors(ctx, executor, nil)
}

// GetBySpecialty получает всех врачей, ведущих приём по указанной специальности
func (r *Repository) GetBySpecialty(ctx context.Context, specialtyID int64) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// EXISTS вместо JOIN, чтобы не дублировать врачей с несколькими специальностями
	condition := squirrel.Expr(
		"EXISTS (SELECT 1 FROM doctor_specialties ds WHERE ds.doctor_id = d.id AND ds.specialty_id = ?)",
		specialtyID,
	)

	return r.selectDoctors(ctx, executor, condition)
}

// GetByIDDayAndSpecialty получает врача по ID при условии, что он работает
// в указанный день недели и ведёт приём по указанной специальности.
// Комбинированный запрос: любое из трёх несовпадений даёт ErrDoctorNotFound.
func (r *Repository) GetByIDDayAndSpecialty(ctx context.Context, id int64, day domain.Weekday, specialtyID int64) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	conditions := squirrel.And{
		squirrel.Eq{"d.id": id},
		squirrel.Expr(
			"EXISTS (SELECT 1 FROM doctor_working_hours wh WHERE wh.doctor_id = d.id AND wh.day = ?)",
			string(day),
		),
		squirrel.Expr(
			"EXISTS (SELECT 1 FROM doctor_specialties ds WHERE ds.doctor_id = d.id AND ds.specialty_id = ?)",
			specialtyID,
		),
	}

	doctors, err := r.selectDoctors(ctx, executor, conditions)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrDoctorNotFound
	}

	return doctors[0], nil
}

// selectDoctors выполняет выборку врачей по условию и дозагружает
// расписание и специальности
func (r *Repository) selectDoctors(ctx context.Context, executor DBExecutor, where interface{}) ([]*domain.Doctor, error) {
	builder := psqlbuilder.Select(
		"d.id",
		"d.name",
		"d.description",
		"d.image_url",
		"d.created_at",
		"d.updated_at",
	).
		From("doctors d").
		OrderBy("d.id")

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectDoctors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectDoctors - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var doctors []*domain.Doctor
	byID := make(map[int64]*domain.Doctor)

	for rows.Next() {
		var doc domain.Doctor
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&doc.ID,
			&doc.Name,
			&doc.Description,
			&doc.ImageURL,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: selectDoctors - scan doctor: %v", ErrScanRow, err)
		}

		doc.CreatedAt = createdAt.Time
		doc.UpdatedAt = updatedAt.Time

		doctors = append(doctors, &doc)
		byID[doc.ID] = &doc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectDoctors - iterate rows: %v", ErrExecQuery, err)
	}

	if len(doctors) == 0 {
		return []*domain.Doctor{}, nil
	}

	ids := make([]int64, 0, len(doctors))
	for _, doc := range doctors {
		ids = append(ids, doc.ID)
	}

	if err := r.loadWorkingHours(ctx, executor, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadSpecialties(ctx, executor, ids, byID); err != nil {
		return nil, err
	}

	return doctors, nil
}

// loadWorkingHours загружает недельное расписание для набора врачей
func (r *Repository) loadWorkingHours(ctx context.Context, executor DBExecutor, doctorIDs []int64, byID map[int64]*domain.Doctor) error {
	query, args, err := psqlbuilder.Select(
		"wh.doctor_id",
		"wh.day",
		"wh.work_start",
		"wh.work_end",
	).
		From("doctor_working_hours wh").
		Where(squirrel.Eq{"wh.doctor_id": doctorIDs}).
		OrderBy("wh.doctor_id", "wh.id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadWorkingHours - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var doctorID int64
		var day string
		var wh domain.WorkingHour

		if err := rows.Scan(&doctorID, &day, &wh.WorkStart, &wh.WorkEnd); err != nil {
			return fmt.Errorf("%w: loadWorkingHours - scan row: %v", ErrScanRow, err)
		}

		weekday, err := domain.ParseWeekday(day)
		if err != nil {
			return fmt.Errorf("%w: loadWorkingHours - %v", ErrScanRow, err)
		}
		wh.Day = weekday

		if doc, ok := byID[doctorID]; ok {
			doc.WorkingHours = append(doc.WorkingHours, wh)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadWorkingHours - iterate rows: %v", ErrExecQuery, err)
	}

	return nil
}

// loadSpecialties загружает идентификаторы специальностей для набора врачей
func (r *Repository) loadSpecialties(ctx context.Context, executor DBExecutor, doctorIDs []int64, byID map[int64]*domain.Doctor) error {
	query, args, err := psqlbuilder.Select(
		"ds.doctor_id",
		"ds.specialty_id",
	).
		From("doctor_specialties ds").
		Where(squirrel.Eq{"ds.doctor_id": doctorIDs}).
		OrderBy("ds.doctor_id", "ds.specialty_id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadSpecialties - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadSpecialties - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var doctorID, specialtyID int64

		if err := rows.Scan(&doctorID, &specialtyID); err != nil {
			return fmt.Errorf("%w: loadSpecialties - scan row: %v", ErrScanRow, err)
		}

		if doc, ok := byID[doctorID]; ok {
			doc.SpecialtyIDs = append(doc.SpecialtyIDs, specialtyID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadSpecialties - iterate rows: %v", ErrExecQuery, err)
	}

	return nil
}
