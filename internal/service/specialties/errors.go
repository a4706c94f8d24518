package specialties

import "errors"

var (
	// ErrSpecialtyNotFound возвращается, когда специальность не найдена
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("specialties service: internal error")
)
