package list_reviews

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
)

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/villas/{villaId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	villaID := mux.Vars(r)["villaId"]

	result, err := h.service.ListByVilla(r.Context(), villaID)
	if err != nil {
		h.logger.Error("GET /villas/{id}/reviews - Failed to list reviews: villa_id=%s, error=%v", villaID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
