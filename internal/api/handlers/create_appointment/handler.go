package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDateOrTime      = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgInvalidInput           = "некорректные входные данные"
	msgDoctorNotFound         = "врач не найден"
	msgSpecialtyNotFound      = "специальность не найдена"
	msgAppointmentUnavailable = "выбранное время приёма недоступно"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: doctor_id=%d, specialty_id=%d",
				req.DoctorID, req.SpecialtyID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createAppointment.ErrSpecialtyNotFound):
			h.logger.Warn("POST /appointments - Specialty not found: specialty_id=%d", req.SpecialtyID)
			handlers.RespondNotFound(w, msgSpecialtyNotFound)

		case errors.Is(err, createAppointment.ErrAppointmentUnavailable):
			h.logger.Warn("POST /appointments - Appointment unavailable: doctor_id=%d, date=%s, time=%s",
				req.DoctorID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgAppointmentUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: doctor_id=%d, patient_id=%d, error=%v",
				req.DoctorID, req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, doctor_id=%d, patient_id=%d",
		result.ID, req.DoctorID, req.PatientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
