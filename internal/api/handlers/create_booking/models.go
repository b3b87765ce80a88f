package create_booking

import (
	"time"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	createBooking "github.com/m04kA/AGIA-RentalService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VillaID    string `json:"villaId"`
	StartDate  string `json:"startDate"` // "2024-06-01"
	EndDate    string `json:"endDate"`   // "2024-06-05"
	TotalPrice int64  `json:"totalPrice,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	VillaID     string `json:"villaId"`
	UserID      string `json:"userId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Nights      int    `json:"nights"`
	TotalPrice  int64  `json:"totalPrice"`
	Status      string `json:"status"`
	HasReviewed bool   `json:"hasReviewed"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID берётся из контекста аутентификации, не из тела
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		VillaID:    r.VillaID,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: r.TotalPrice,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		VillaID:     resp.VillaID,
		UserID:      resp.UserID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		Nights:      resp.Nights,
		TotalPrice:  resp.TotalPrice,
		Status:      resp.Status,
		HasReviewed: resp.HasReviewed,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
