package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// Request модель запроса на создание приёма
type Request struct {
	DoctorID    int64            // ID врача
	SpecialtyID int64            // ID специальности
	PatientID   int64            // ID пациента
	Date        time.Time        // Дата приёма (без времени)
	StartTime   types.TimeString // Время начала приёма (например, "09:00")
}

// Response модель ответа с созданным приёмом
type Response struct {
	ID              int64            // ID созданного приёма
	DoctorID        int64            // ID врача
	SpecialtyID     *int64           // ID специальности
	PatientID       int64            // ID пациента
	Date            time.Time        // Дата приёма
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах (из специальности)
	Status          string           // Статус приёма

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
