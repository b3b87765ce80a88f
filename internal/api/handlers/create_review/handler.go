package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
	"github.com/m04kA/AGIA-RentalService/internal/api/middleware"
	"github.com/m04kA/AGIA-RentalService/internal/service/reviews"
	"github.com/m04kA/AGIA-RentalService/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserNotFound       = "пользователь не найден"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нельзя оставить отзыв по чужому бронированию"
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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Автор отзыва определяется аутентификацией, а не телом запроса
	req.UserID = userID

	review, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: user_id=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reviews.ErrUserNotFound):
			h.logger.Warn("POST /reviews - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, reviews.ErrBookingNotFound):
			h.logger.Warn("POST /reviews - Booking not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /reviews - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /reviews - Failed to create review: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%s, user_id=%s", review.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
