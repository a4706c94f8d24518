package domain

// Default values
const (
	// DefaultAppointmentDuration длительность приёма (минуты), когда у
	// специальности она не задана
	DefaultAppointmentDuration = 30
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы приёмов, занимающих свой слот
// Отменённые приёмы не учитываются при расчёте доступности
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
}
