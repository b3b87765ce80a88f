package list_villas

import (
	"context"

	"github.com/m04kA/AGIA-RentalService/internal/service/villas/models"
)

type VillasService interface {
	List(ctx context.Context) (*models.VillaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
