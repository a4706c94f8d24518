package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	specialtyRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/specialty"
)

// UseCase use case для получения доступных слотов записи на приём
type UseCase struct {
	doctorRepo      DoctorRepository
	specialtyRepo   SpecialtyRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	specialtyRepo SpecialtyRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:      doctorRepo,
		specialtyRepo:   specialtyRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: specialty=%d, date=%s",
		req.SpecialtyID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем врачей по специальности
	doctors, err := uc.doctorRepo.GetBySpecialty(ctx, req.SpecialtyID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get doctors for specialty=%d: %v", req.SpecialtyID, err)
		return nil, fmt.Errorf("%w: failed to get doctors: %v", ErrInternal, err)
	}
	if len(doctors) == 0 {
		uc.logger.Warn("GetAvailableSlots: no doctors for specialty=%d", req.SpecialtyID)
		return nil, ErrNoDoctorsForSpecialty
	}

	// 3. Получаем специальность (источник длительности приёма)
	specialty, err := uc.specialtyRepo.GetByID(ctx, req.SpecialtyID)
	if err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			uc.logger.Warn("GetAvailableSlots: specialty id=%d not found", req.SpecialtyID)
			return nil, ErrSpecialtyNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get specialty id=%d: %v", req.SpecialtyID, err)
		return nil, fmt.Errorf("%w: failed to get specialty: %v", ErrInternal, err)
	}

	duration := specialty.EffectiveDuration()

	// 4. Определяем день недели запрошенной даты
	dayOfWeek := domain.WeekdayFromTime(req.Date)

	result := make([]DoctorSlots, 0, len(doctors))

	// 5. Для каждого врача строим сетку слотов и вычитаем занятые
	for _, doctor := range doctors {
		// Врач не работает в этот день недели - просто исключаем его из ответа
		workingHours, ok := doctor.WorkingHoursFor(dayOfWeek)
		if !ok {
			continue
		}

		grid, err := generateSlotGrid(workingHours.WorkStart, workingHours.WorkEnd, duration)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate slot grid for doctor=%d: %v", doctor.ID, err)
			return nil, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
		}

		appointments, err := uc.appointmentRepo.GetByDoctorAndDate(ctx, doctor.ID, req.Date, false)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get appointments for doctor=%d: %v", doctor.ID, err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		available, err := freeSlots(grid, duration, appointments)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to compute free slots for doctor=%d: %v", doctor.ID, err)
			return nil, fmt.Errorf("%w: failed to compute free slots: %v", ErrInternal, err)
		}

		// Врачи без свободных слотов в ответ не попадают
		if len(available) == 0 {
			continue
		}

		result = append(result, DoctorSlots{
			DoctorID:        doctor.ID,
			DoctorName:      doctor.Name,
			SpecialtyIDs:    doctor.SpecialtyIDs,
			AvailableSlots:  available,
			DurationMinutes: duration,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d doctors with free slots for specialty=%d, date=%s",
		len(result), req.SpecialtyID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:        req.Date,
		SpecialtyID: req.SpecialtyID,
		Doctors:     result,
	}, nil
}
