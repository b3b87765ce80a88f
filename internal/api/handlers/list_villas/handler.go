package list_villas

import (
	"net/http"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
)

type Handler struct {
	service VillasService
	logger  Logger
}

func NewHandler(service VillasService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/villas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /villas - Failed to list villas: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
