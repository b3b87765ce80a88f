package villas

import (
	"context"
	"errors"
	"fmt"

	villaRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/villa"
	"github.com/m04kA/AGIA-RentalService/internal/service/villas/models"
	"github.com/m04kA/AGIA-RentalService/pkg/validate"
)

// Service сервис каталога вилл
type Service struct {
	villaRepo VillaRepository
	userRepo  UserRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(villaRepo VillaRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		villaRepo: villaRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// List возвращает весь каталог вилл
func (s *Service) List(ctx context.Context) (*models.VillaListResponse, error) {
	villas, err := s.villaRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVillaList(villas), nil
}

// GetByID получает виллу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.VillaResponse, error) {
	villa, err := s.villaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, villaRepo.ErrVillaNotFound) {
			s.logger.Warn("GetByID: villa id=%s not found", id)
			return nil, ErrVillaNotFound
		}
		s.logger.Error("GetByID: repository error for villa id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVilla(villa), nil
}

// Create добавляет виллу в каталог
// Доступно только администратору
func (s *Service) Create(ctx context.Context, req *models.SaveVillaRequest) (*models.VillaResponse, error) {
	s.logger.Info("Create: creating villa %q by user=%s", req.Name, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Create: access denied for user=%s", req.UserID)
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.villaRepo.Create(ctx, req.ToDomainVilla())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created villa id=%s", created.ID)
	return models.FromDomainVilla(created), nil
}

// Update обновляет данные виллы
// Доступно только администратору
func (s *Service) Update(ctx context.Context, id string, req *models.SaveVillaRequest) (*models.VillaResponse, error) {
	s.logger.Info("Update: updating villa id=%s by user=%s", id, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Update: access denied for user=%s", req.UserID)
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	villa := req.ToDomainVilla()
	villa.ID = id

	if err := s.villaRepo.Update(ctx, villa); err != nil {
		if errors.Is(err, villaRepo.ErrVillaNotFound) {
			s.logger.Warn("Update: villa id=%s not found", id)
			return nil, ErrVillaNotFound
		}
		s.logger.Error("Update: repository error for villa id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.villaRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload villa id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload villa: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated villa id=%s", id)
	return models.FromDomainVilla(updated), nil
}

// Delete удаляет виллу из каталога
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, id string, userID string) error {
	s.logger.Info("Delete: deleting villa id=%s by user=%s", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%s", userID)
		return err
	}

	if err := s.villaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, villaRepo.ErrVillaNotFound) {
			s.logger.Warn("Delete: villa id=%s not found", id)
			return ErrVillaNotFound
		}
		s.logger.Error("Delete: repository error for villa id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted villa id=%s", id)
	return nil
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrAccessDenied
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrAccessDenied
	}
	if !user.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
