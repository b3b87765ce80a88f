package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	userRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/user"
	"github.com/m04kA/AGIA-RentalService/internal/service/users/models"
	"github.com/m04kA/AGIA-RentalService/pkg/validate"
)

// Service сервис пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login выполняет вход по email: существующий пользователь возвращается,
// неизвестный - создаётся с ролью user (lookup-or-create, пароль не проверяется)
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validate.Var(email, "required,email"); err != nil {
		s.logger.Warn("Login: invalid email %q", req.Email)
		return nil, ErrInvalidEmail
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("Login: existing user id=%s", user.ID)
		return models.FromDomainUser(user), nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	// Пользователь не найден - создаём гостевой аккаунт
	// Имя берётся из локальной части email
	newUser := &domain.User{
		Name:     strings.SplitN(email, "@", 2)[0],
		Email:    email,
		Password: domain.DefaultPassword,
		Role:     domain.RoleUser,
		Avatar:   domain.DefaultAvatar,
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		// Гонка параллельных логинов одним email: пользователь уже создан,
		// перечитываем его
		if errors.Is(err, userRepo.ErrEmailTaken) {
			existing, getErr := s.userRepo.GetByEmail(ctx, email)
			if getErr == nil {
				s.logger.Info("Login: concurrent registration for email=%s, reusing user id=%s", email, existing.ID)
				return models.FromDomainUser(existing), nil
			}
		}
		s.logger.Error("Login: failed to create user for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - create user: %v", ErrInternal, err)
	}

	s.logger.Info("Login: created guest user id=%s", created.ID)
	return models.FromDomainUser(created), nil
}
