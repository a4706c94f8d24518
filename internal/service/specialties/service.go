package specialties

import (
	"context"
	"errors"
	"fmt"

	specialtyRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/specialty"
	"github.com/m04kA/SMC-ClinicService/internal/service/specialties/models"
)

// Service сервис для работы со специальностями
type Service struct {
	specialtyRepo SpecialtyRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса специальностей
func NewService(specialtyRepo SpecialtyRepository, logger Logger) *Service {
	return &Service{
		specialtyRepo: specialtyRepo,
		logger:        logger,
	}
}

// List получает все специальности
func (s *Service) List(ctx context.Context) (*models.SpecialtyListResponse, error) {
	s.logger.Info("List: fetching all specialties")

	specialties, err := s.specialtyRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d specialties", len(specialties))
	return models.FromDomainSpecialties(specialties), nil
}

// GetByID получает специальность по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpecialtyResponse, error) {
	s.logger.Info("GetByID: fetching specialty id=%d", id)

	spec, err := s.specialtyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			s.logger.Warn("GetByID: specialty id=%d not found", id)
			return nil, ErrSpecialtyNotFound
		}
		s.logger.Error("GetByID: repository error for specialty id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	response := models.FromDomainSpecialty(spec)
	return &response, nil
}
