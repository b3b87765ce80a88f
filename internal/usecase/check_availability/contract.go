package check_availability

import (
	"context"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedByVillaID(ctx context.Context, villaID string) ([]*domain.Booking, error)
}

// VillaRepository интерфейс репозитория каталога вилл
type VillaRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Villa, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
