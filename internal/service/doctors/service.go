package doctors

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-ClinicService/internal/service/doctors/models"
)

// Service сервис для работы с врачами
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// List получает всех врачей
func (s *Service) List(ctx context.Context) (*models.DoctorListResponse, error) {
	s.logger.Info("List: fetching all doctors")

	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d doctors", len(doctors))
	return models.FromDomainDoctors(doctors), nil
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DoctorResponse, error) {
	s.logger.Info("GetByID: fetching doctor id=%d", id)

	doc, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetByID: doctor id=%d not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: repository error for doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	response := models.FromDomainDoctor(doc)
	return &response, nil
}
