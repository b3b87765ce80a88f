package models

import (
	"time"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва
// BookingID опционален: отзыв с привязкой к бронированию помечает его
// отрецензированным
type CreateReviewRequest struct {
	UserID    string  `json:"userId" validate:"required"`
	VillaID   string  `json:"villaId" validate:"required"`
	BookingID *string `json:"bookingId,omitempty"`
	Rating    int     `json:"rating" validate:"required"`
	Comment   string  `json:"comment" validate:"max=1000"`
}

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID         string    `json:"id"`
	VillaID    string    `json:"villaId"`
	UserID     string    `json:"userId"`
	BookingID  *string   `json:"bookingId,omitempty"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:         r.ID,
		VillaID:    r.VillaID,
		UserID:     r.UserID,
		BookingID:  r.BookingID,
		UserName:   r.UserName,
		UserAvatar: r.UserAvatar,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}

	return resp
}
