package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	specialtyRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/specialty"
	"github.com/m04kA/SMC-ClinicService/pkg/ptr"
)

// UseCase use case для создания приёма
type UseCase struct {
	doctorRepo      DoctorRepository
	specialtyRepo   SpecialtyRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	specialtyRepo SpecialtyRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:      doctorRepo,
		specialtyRepo:   specialtyRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания приёма
// Проверка пересечений и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных запроса на один слот не прошли проверку по
// устаревшему чтению. Дополнительная страховка - частичный уникальный индекс
// (doctor_id, date, start_time) на стороне БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: doctor=%d, specialty=%d, patient=%d, date=%s, time=%s",
		req.DoctorID, req.SpecialtyID, req.PatientID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем день недели запрошенной даты
	dayOfWeek := domain.WeekdayFromTime(req.Date)

	// 3. Комбинированный запрос: врач существует, работает в этот день
	// и ведёт приём по специальности. Любое несовпадение - ErrDoctorNotFound.
	_, err := uc.doctorRepo.GetByIDDayAndSpecialty(ctx, req.DoctorID, dayOfWeek, req.SpecialtyID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("CreateAppointment: doctor id=%d not found for day=%s, specialty=%d",
				req.DoctorID, dayOfWeek, req.SpecialtyID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 4. Получаем специальность - источник длительности приёма
	// Длительность всегда берётся из специальности, клиент её не передаёт
	specialty, err := uc.specialtyRepo.GetByID(ctx, req.SpecialtyID)
	if err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			uc.logger.Warn("CreateAppointment: specialty id=%d not found", req.SpecialtyID)
			return nil, ErrSpecialtyNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get specialty id=%d: %v", req.SpecialtyID, err)
		return nil, fmt.Errorf("%w: failed to get specialty: %v", ErrInternal, err)
	}

	duration := specialty.EffectiveDuration()

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем все активные приёмы врача на эту дату
		appointments, err := uc.appointmentRepo.GetByDoctorAndDate(txCtx, req.DoctorID, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			// Внутри транзакции нижележащая ошибка оборачивается через %w,
			// чтобы txmanager видел serialization failure и повторил транзакцию
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		// 5.2. Проверяем пересечение запрошенного интервала с существующими
		overlap, err := hasOverlap(req.StartTime, duration, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if overlap {
			uc.logger.Warn("CreateAppointment: slot %s overlaps existing appointment for doctor=%d, date=%s",
				req.StartTime, req.DoctorID, req.Date.Format(domain.DateFormat))
			return ErrAppointmentUnavailable
		}

		// 5.3. Создаем приём со статусом scheduled
		appointment := &domain.Appointment{
			DoctorID:    req.DoctorID,
			SpecialtyID: ptr.Ptr(req.SpecialtyID),
			PatientID:   req.PatientID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			Duration:    duration,
			Status:      domain.StatusScheduled,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Нарушение уникального индекса - конкурентный запрос успел раньше
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s already taken for doctor=%d, date=%s",
					req.StartTime, req.DoctorID, req.Date.Format(domain.DateFormat))
				return ErrAppointmentUnavailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		DoctorID:        result.DoctorID,
		SpecialtyID:     result.SpecialtyID,
		PatientID:       result.PatientID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.Duration,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
