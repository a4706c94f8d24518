package models

import "github.com/m04kA/SMC-ClinicService/internal/domain"

// SpecialtyResponse модель специальности для ответа сервиса
type SpecialtyResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	AppointmentDuration int    `json:"appointmentDuration"`
}

// SpecialtyListResponse список специальностей
type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
}

// FromDomainSpecialty конвертирует доменную модель в ответ сервиса
func FromDomainSpecialty(spec *domain.Specialty) SpecialtyResponse {
	return SpecialtyResponse{
		ID:                  spec.ID,
		Name:                spec.Name,
		AppointmentDuration: spec.AppointmentDuration,
	}
}

// FromDomainSpecialties конвертирует список доменных моделей в ответ сервиса
func FromDomainSpecialties(specs []*domain.Specialty) *SpecialtyListResponse {
	result := make([]SpecialtyResponse, len(specs))
	for i, spec := range specs {
		result[i] = FromDomainSpecialty(spec)
	}
	return &SpecialtyListResponse{Specialties: result}
}
