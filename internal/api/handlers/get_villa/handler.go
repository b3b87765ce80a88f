package get_villa

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
	"github.com/m04kA/AGIA-RentalService/internal/service/villas"
)

const msgVillaNotFound = "вилла не найдена"

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

// Handle GET /api/v1/villas/{villaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	villaID := mux.Vars(r)["villaId"]

	villa, err := h.service.GetByID(r.Context(), villaID)
	if err != nil {
		switch {
		case errors.Is(err, villas.ErrVillaNotFound):
			h.logger.Warn("GET /villas/{id} - Villa not found: villa_id=%s", villaID)
			handlers.RespondNotFound(w, msgVillaNotFound)

		default:
			h.logger.Error("GET /villas/{id} - Failed to get villa: villa_id=%s, error=%v", villaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, villa)
}
