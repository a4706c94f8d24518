package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	// GetByIDDayAndSpecialty комбинированный запрос: врач существует,
	// работает в указанный день недели и ведёт приём по специальности
	GetByIDDayAndSpecialty(ctx context.Context, id int64, day domain.Weekday, specialtyID int64) (*domain.Doctor, error)
}

// SpecialtyRepository интерфейс репозитория специальностей
type SpecialtyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
}

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
