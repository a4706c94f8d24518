package get_available_slots

import "errors"

var (
	// ErrSpecialtyNotFound возвращается, когда специальность не найдена
	ErrSpecialtyNotFound = errors.New("get_available_slots: specialty not found")

	// ErrNoDoctorsForSpecialty возвращается, когда по специальности нет ни одного врача
	ErrNoDoctorsForSpecialty = errors.New("get_available_slots: no doctors for specialty")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
