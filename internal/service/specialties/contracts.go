package specialties

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// SpecialtyRepository интерфейс репозитория специальностей
type SpecialtyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
	List(ctx context.Context) ([]*domain.Specialty, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
