package domain

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// WorkingHour рабочее окно врача в конкретный день недели
type WorkingHour struct {
	Day       Weekday
	WorkStart types.TimeString
	WorkEnd   types.TimeString
}

// Doctor represents a doctor in the clinic
type Doctor struct {
	ID           int64
	Name         string
	Description  *string
	ImageURL     *string
	SpecialtyIDs []int64
	WorkingHours []WorkingHour

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkingHoursFor возвращает рабочее окно врача на указанный день недели
// Если у врача несколько записей на один день, берётся первая.
// Второе значение false означает, что врач в этот день не работает.
func (d *Doctor) WorkingHoursFor(day Weekday) (WorkingHour, bool) {
	for _, wh := range d.WorkingHours {
		if wh.Day == day {
			return wh, true
		}
	}
	return WorkingHour{}, false
}

// OffersSpecialty возвращает true, если врач ведёт приём по указанной специальности
func (d *Doctor) OffersSpecialty(specialtyID int64) bool {
	for _, id := range d.SpecialtyIDs {
		if id == specialtyID {
			return true
		}
	}
	return false
}
