package villas

import (
	"context"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
)

// VillaRepository интерфейс репозитория каталога вилл
type VillaRepository interface {
	Create(ctx context.Context, villa *domain.Villa) (*domain.Villa, error)
	GetByID(ctx context.Context, id string) (*domain.Villa, error)
	List(ctx context.Context) ([]*domain.Villa, error)
	Update(ctx context.Context, villa *domain.Villa) error
	Delete(ctx context.Context, id string) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
