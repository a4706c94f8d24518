package domain

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked appointment with a doctor
type Appointment struct {
	ID          int64
	DoctorID    int64
	SpecialtyID *int64
	PatientID   int64
	Date        time.Time // Дата приёма без компонента времени
	StartTime   types.TimeString
	// Длительность в минутах, копируется из специальности в момент создания
	// и дальше не пересчитывается
	Duration int
	Status   AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если приём занимает свой слот
// Отменённый приём освобождает слот
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// End возвращает время окончания приёма (полуинтервал [StartTime, End))
func (a *Appointment) End() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.Duration)
}
