package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_slots"
)

// DoctorAvailableSlots свободные слоты одного врача
type DoctorAvailableSlots struct {
	DoctorID            int64    `json:"doctorId"`
	DoctorName          string   `json:"doctorName"`
	Specialty           []int64  `json:"specialty"`
	AvailableSlots      []string `json:"availableSlots"`
	AppointmentDuration int      `json:"appointmentDuration"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Ответ - массив врачей, у которых есть хотя бы один свободный слот
func FromUseCaseResponse(resp *getAvailableSlots.Response) []DoctorAvailableSlots {
	result := make([]DoctorAvailableSlots, len(resp.Doctors))
	for i, doc := range resp.Doctors {
		slots := make([]string, len(doc.AvailableSlots))
		for j, slot := range doc.AvailableSlots {
			slots[j] = slot.String()
		}

		specialtyIDs := doc.SpecialtyIDs
		if specialtyIDs == nil {
			specialtyIDs = []int64{}
		}

		result[i] = DoctorAvailableSlots{
			DoctorID:            doc.DoctorID,
			DoctorName:          doc.DoctorName,
			Specialty:           specialtyIDs,
			AvailableSlots:      slots,
			AppointmentDuration: doc.DurationMinutes,
		}
	}
	return result
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(specialtyID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		SpecialtyID: specialtyID,
		Date:        date,
	}, nil
}
