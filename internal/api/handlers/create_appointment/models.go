package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	createAppointment "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	DoctorID    int64  `json:"doctorId"`
	SpecialtyID int64  `json:"specialtyId"`
	PatientID   int64  `json:"patientId"`
	Date        string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "09:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	DoctorID    int64  `json:"doctorId"`
	SpecialtyID *int64 `json:"specialtyId,omitempty"`
	PatientID   int64  `json:"patientId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		DoctorID:    r.DoctorID,
		SpecialtyID: r.SpecialtyID,
		PatientID:   r.PatientID,
		Date:        date,
		StartTime:   startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		DoctorID:    resp.DoctorID,
		SpecialtyID: resp.SpecialtyID,
		PatientID:   resp.PatientID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Duration:    resp.DurationMinutes,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
