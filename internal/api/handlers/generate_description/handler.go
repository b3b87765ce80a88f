package generate_description

import (
	"errors"
	"net/http"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
	"github.com/m04kA/AGIA-RentalService/internal/integrations/genai"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNameRequired       = "поле name обязательно"

	// Без ключа API фича деградирует мягко: фронтенд получает
	// заглушку вместо ошибки
	fallbackDescription = "AI not configured on server."
)

type Handler struct {
	generator DescriptionGenerator
	logger    Logger
}

func NewHandler(generator DescriptionGenerator, logger Logger) *Handler {
	return &Handler{
		generator: generator,
		logger:    logger,
	}
}

// Handle POST /api/v1/generate-description
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateDescriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /generate-description - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" {
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	description, err := h.generator.GenerateDescription(r.Context(), req.Name, req.Location, req.Features)
	if err != nil {
		switch {
		case errors.Is(err, genai.ErrNotConfigured):
			h.logger.Warn("POST /generate-description - GenAI is not configured")
			handlers.RespondJSON(w, http.StatusOK, &GenerateDescriptionResponse{
				Description: fallbackDescription,
			})

		default:
			h.logger.Error("POST /generate-description - Failed to generate description: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /generate-description - Description generated for %q", req.Name)
	handlers.RespondJSON(w, http.StatusOK, &GenerateDescriptionResponse{Description: description})
}
