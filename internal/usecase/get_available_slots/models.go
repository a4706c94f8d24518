package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SpecialtyID int64     // ID специальности
	Date        time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со свободными слотами по врачам
type Response struct {
	Date        time.Time     // Дата, на которую запрашивались слоты
	SpecialtyID int64         // ID специальности
	Doctors     []DoctorSlots // Врачи, у которых есть хотя бы один свободный слот
}

// DoctorSlots свободные слоты одного врача
type DoctorSlots struct {
	DoctorID        int64              // ID врача
	DoctorName      string             // Имя врача
	SpecialtyIDs    []int64            // Специальности врача
	AvailableSlots  []types.TimeString // Времена начала свободных слотов по возрастанию
	DurationMinutes int                // Длительность приёма (из специальности)
}
