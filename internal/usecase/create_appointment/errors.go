package create_appointment

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден, не работает
	// в этот день недели или не ведёт приём по указанной специальности
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrSpecialtyNotFound возвращается, когда специальность не найдена
	ErrSpecialtyNotFound = errors.New("create_appointment: specialty not found")

	// ErrAppointmentUnavailable возвращается, когда запрошенный интервал
	// пересекается с существующим приёмом врача
	ErrAppointmentUnavailable = errors.New("create_appointment: appointment unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
