package get_specialties

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
)

type Handler struct {
	service SpecialtiesService
	logger  Logger
}

func NewHandler(service SpecialtiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/specialties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments/specialties - Failed to list specialties: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/specialties - Specialties retrieved successfully: count=%d",
		len(result.Specialties))
	handlers.RespondJSON(w, http.StatusOK, result)
}
