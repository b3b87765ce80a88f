package list_reviews

import (
	"context"

	"github.com/m04kA/AGIA-RentalService/internal/service/reviews/models"
)

type ReviewsService interface {
	ListByVilla(ctx context.Context, villaID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
