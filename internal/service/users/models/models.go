package models

import (
	"time"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
)

// LoginRequest запрос на вход по email
// Пароль не проверяется: аутентификация-заглушка lookup-or-create
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse ответ с данными пользователя
// Пароль наружу не отдаётся
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
