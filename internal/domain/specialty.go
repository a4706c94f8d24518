package domain

import "time"

// Specialty represents a medical specialty with a fixed appointment duration
type Specialty struct {
	ID                  int64
	Name                string
	AppointmentDuration int // Длительность приёма в минутах, одинакова для всех врачей специальности

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDuration возвращает длительность приёма специальности
// Если длительность не задана, используется DefaultAppointmentDuration.
func (s *Specialty) EffectiveDuration() int {
	if s.AppointmentDuration > 0 {
		return s.AppointmentDuration
	}
	return DefaultAppointmentDuration
}
