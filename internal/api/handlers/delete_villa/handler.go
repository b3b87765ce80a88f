package delete_villa

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
	"github.com/m04kA/AGIA-RentalService/internal/api/middleware"
	"github.com/m04kA/AGIA-RentalService/internal/service/villas"
)

const (
	msgAccessDenied  = "операция доступна только администратору"
	msgVillaNotFound = "вилла не найдена"
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

// Handle DELETE /api/v1/villas/{villaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	villaID := mux.Vars(r)["villaId"]

	if err := h.service.Delete(r.Context(), villaID, userID); err != nil {
		switch {
		case errors.Is(err, villas.ErrAccessDenied):
			h.logger.Warn("DELETE /villas/{id} - Access denied: villa_id=%s, user_id=%s", villaID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, villas.ErrVillaNotFound):
			h.logger.Warn("DELETE /villas/{id} - Villa not found: villa_id=%s", villaID)
			handlers.RespondNotFound(w, msgVillaNotFound)

		default:
			h.logger.Error("DELETE /villas/{id} - Failed to delete villa: villa_id=%s, error=%v", villaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /villas/{id} - Villa deleted: villa_id=%s, user_id=%s", villaID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
