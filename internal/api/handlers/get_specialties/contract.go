package get_specialties

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/service/specialties/models"
)

type SpecialtiesService interface {
	List(ctx context.Context) (*models.SpecialtyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
