package models

import "github.com/m04kA/SMC-ClinicService/internal/domain"

// WorkingHourResponse рабочее окно врача на день недели
type WorkingHourResponse struct {
	Day       string `json:"day"`
	WorkStart string `json:"workStart"`
	WorkEnd   string `json:"workEnd"`
}

// DoctorResponse модель врача для ответа сервиса
type DoctorResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Description  *string               `json:"description,omitempty"`
	ImageURL     *string               `json:"imageUrl,omitempty"`
	SpecialtyIDs []int64               `json:"specialtyIds"`
	WorkingHours []WorkingHourResponse `json:"workingHours"`
}

// DoctorListResponse список врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// FromDomainDoctor конвертирует доменную модель в ответ сервиса
func FromDomainDoctor(doc *domain.Doctor) DoctorResponse {
	hours := make([]WorkingHourResponse, len(doc.WorkingHours))
	for i, wh := range doc.WorkingHours {
		hours[i] = WorkingHourResponse{
			Day:       wh.Day.String(),
			WorkStart: wh.WorkStart.String(),
			WorkEnd:   wh.WorkEnd.String(),
		}
	}

	specialtyIDs := doc.SpecialtyIDs
	if specialtyIDs == nil {
		specialtyIDs = []int64{}
	}

	return DoctorResponse{
		ID:           doc.ID,
		Name:         doc.Name,
		Description:  doc.Description,
		ImageURL:     doc.ImageURL,
		SpecialtyIDs: specialtyIDs,
		WorkingHours: hours,
	}
}

// FromDomainDoctors конвертирует список доменных моделей в ответ сервиса
func FromDomainDoctors(docs []*domain.Doctor) *DoctorListResponse {
	result := make([]DoctorResponse, len(docs))
	for i, doc := range docs {
		result[i] = FromDomainDoctor(doc)
	}
	return &DoctorListResponse{Doctors: result}
}
