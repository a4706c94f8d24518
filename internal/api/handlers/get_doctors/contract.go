package get_doctors

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/service/doctors/models"
)

type DoctorsService interface {
	List(ctx context.Context) (*models.DoctorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
