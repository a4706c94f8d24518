package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	if req.SpecialtyID <= 0 {
		return fmt.Errorf("%w: specialtyID must be positive", ErrInvalidInput)
	}

	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// hasOverlap проверяет, пересекается ли запрошенный интервал с каким-либо
// активным приёмом врача
//
// Пересечение полуинтервалов: requestedStart < existingEnd И
// requestedEnd > existingStart (строгие неравенства). Приём, начинающийся
// ровно в момент окончания другого, пересечением не считается.
func hasOverlap(
	requestedStart types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) (bool, error) {
	requestedEnd, err := requestedStart.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, appt := range appointments {
		// Отменённые приёмы освобождают свой слот
		if !appt.IsActive() {
			continue
		}

		existingEnd, err := appt.End()
		if err != nil {
			// Приём с некорректным временем не может занимать слот
			continue
		}

		if requestedStart.IsBefore(existingEnd) && requestedEnd.IsAfter(appt.StartTime) {
			return true, nil
		}
	}

	return false, nil
}
