package update_villa

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
	"github.com/m04kA/AGIA-RentalService/internal/api/middleware"
	"github.com/m04kA/AGIA-RentalService/internal/service/villas"
	"github.com/m04kA/AGIA-RentalService/internal/service/villas/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "операция доступна только администратору"
	msgVillaNotFound      = "вилла не найдена"
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

// Handle PUT /api/v1/villas/{villaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	villaID := mux.Vars(r)["villaId"]

	var req models.SaveVillaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /villas/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	villa, err := h.service.Update(r.Context(), villaID, &req)
	if err != nil {
		switch {
		case errors.Is(err, villas.ErrAccessDenied):
			h.logger.Warn("PUT /villas/{id} - Access denied: villa_id=%s, user_id=%s", villaID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, villas.ErrVillaNotFound):
			h.logger.Warn("PUT /villas/{id} - Villa not found: villa_id=%s", villaID)
			handlers.RespondNotFound(w, msgVillaNotFound)

		case errors.Is(err, villas.ErrInvalidInput):
			h.logger.Warn("PUT /villas/{id} - Invalid input: villa_id=%s: %v", villaID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /villas/{id} - Failed to update villa: villa_id=%s, error=%v", villaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /villas/{id} - Villa updated: villa_id=%s, user_id=%s", villaID, userID)
	handlers.RespondJSON(w, http.StatusOK, villa)
}
