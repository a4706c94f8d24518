package get_doctors

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
)

type Handler struct {
	service DoctorsService
	logger  Logger
}

func NewHandler(service DoctorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /doctors - Failed to list doctors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors - Doctors retrieved successfully: count=%d", len(result.Doctors))
	handlers.RespondJSON(w, http.StatusOK, result)
}
