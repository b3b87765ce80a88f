package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
	"github.com/m04kA/AGIA-RentalService/internal/api/middleware"
	createBooking "github.com/m04kA/AGIA-RentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVillaNotFound      = "вилла не найдена"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgDateInPast         = "дата заезда не может быть в прошлом"
	msgDatesUnavailable   = "вилла уже забронирована на выбранные даты, выберите другой диапазон"
	msgPriceMismatch      = "стоимость бронирования не совпадает с расчётной"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDatesUnavailable):
			h.logger.Warn("POST /bookings - Dates unavailable: user_id=%s, villa_id=%s", userID, req.VillaID)
			handlers.RespondError(w, http.StatusConflict, msgDatesUnavailable)

		case errors.Is(err, createBooking.ErrVillaNotFound):
			h.logger.Warn("POST /bookings - Villa not found: villa_id=%s", req.VillaID)
			handlers.RespondNotFound(w, msgVillaNotFound)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%s, villa_id=%s", userID, req.VillaID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Start date in past: user_id=%s, villa_id=%s", userID, req.VillaID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrPriceMismatch):
			h.logger.Warn("POST /bookings - Price mismatch: user_id=%s, villa_id=%s", userID, req.VillaID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, villa_id=%s: %v", userID, req.VillaID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, villa_id=%s, error=%v",
				userID, req.VillaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, villa_id=%s",
		result.ID, userID, req.VillaID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
