package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_slots"
)

const (
	msgMissingSpecialtyID = "ID специальности обязателен"
	msgInvalidSpecialtyID = "некорректный ID специальности"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSpecialtyNotFound  = "специальность не найдена"
	msgNoDoctors          = "по этой специальности нет врачей"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/available-slots
// Query params: specialtyId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем specialtyId из query параметров
	specialtyIDStr := r.URL.Query().Get("specialtyId")
	if specialtyIDStr == "" {
		h.logger.Warn("GET /appointments/available-slots - Missing specialty ID")
		handlers.RespondBadRequest(w, msgMissingSpecialtyID)
		return
	}

	specialtyID, err := strconv.ParseInt(specialtyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/available-slots - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(specialtyID, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /appointments/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrSpecialtyNotFound):
			h.logger.Warn("GET /appointments/available-slots - Specialty not found: specialty_id=%d", specialtyID)
			handlers.RespondNotFound(w, msgSpecialtyNotFound)

		case errors.Is(err, getAvailableSlots.ErrNoDoctorsForSpecialty):
			h.logger.Warn("GET /appointments/available-slots - No doctors for specialty: specialty_id=%d", specialtyID)
			handlers.RespondNotFound(w, msgNoDoctors)

		default:
			h.logger.Error("GET /appointments/available-slots - Failed to get slots: specialty_id=%d, date=%s, error=%v",
				specialtyID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /appointments/available-slots - Slots retrieved successfully: specialty_id=%d, date=%s, doctors_count=%d",
		specialtyID, dateStr, len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
