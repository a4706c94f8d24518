package doctors

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("doctors service: internal error")
)
