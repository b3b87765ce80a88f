package create_villa

import (
	"errors"
	"net/http"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
	"github.com/m04kA/AGIA-RentalService/internal/api/middleware"
	"github.com/m04kA/AGIA-RentalService/internal/service/villas"
	"github.com/m04kA/AGIA-RentalService/internal/service/villas/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "операция доступна только администратору"
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

// Handle POST /api/v1/villas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req models.SaveVillaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /villas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	villa, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, villas.ErrAccessDenied):
			h.logger.Warn("POST /villas - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, villas.ErrInvalidInput):
			h.logger.Warn("POST /villas - Invalid input: user_id=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /villas - Failed to create villa: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /villas - Villa created: villa_id=%s, user_id=%s", villa.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, villa)
}
