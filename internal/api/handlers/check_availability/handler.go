package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
	"github.com/m04kA/AGIA-RentalService/internal/domain"
	checkAvailability "github.com/m04kA/AGIA-RentalService/internal/usecase/check_availability"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDates  = "параметры startDate и endDate обязательны"
	msgVillaNotFound = "вилла не найдена"
	msgInvalidInput  = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/villas/{villaId}/availability?startDate=2024-06-01&endDate=2024-06-05
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	villaID := mux.Vars(r)["villaId"]

	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /villas/{id}/availability - Invalid startDate %q: %v", startStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /villas/{id}/availability - Invalid endDate %q: %v", endStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		VillaID:   villaID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrVillaNotFound):
			h.logger.Warn("GET /villas/{id}/availability - Villa not found: villa_id=%s", villaID)
			handlers.RespondNotFound(w, msgVillaNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /villas/{id}/availability - Invalid input: villa_id=%s: %v", villaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /villas/{id}/availability - Failed to check availability: villa_id=%s, error=%v",
				villaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
