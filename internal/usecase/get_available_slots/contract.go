package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	// GetBySpecialty получает всех врачей, ведущих приём по специальности
	GetBySpecialty(ctx context.Context, specialtyID int64) ([]*domain.Doctor, error)
}

// SpecialtyRepository интерфейс репозитория специальностей
type SpecialtyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
}

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	// GetByDoctorAndDate получает приёмы врача на дату
	// includeInactive = false исключает отменённые приёмы
	GetByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
