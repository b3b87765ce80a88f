package update_villa

import (
	"context"

	"github.com/m04kA/AGIA-RentalService/internal/service/villas/models"
)

type VillasService interface {
	Update(ctx context.Context, id string, req *models.SaveVillaRequest) (*models.VillaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
