package doctors

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	List(ctx context.Context) ([]*domain.Doctor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
