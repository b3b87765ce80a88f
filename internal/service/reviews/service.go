package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/user"
	"github.com/m04kA/AGIA-RentalService/internal/service/reviews/models"
	"github.com/m04kA/AGIA-RentalService/pkg/validate"
)

// Service сервис отзывов
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	userRepo    UserRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает отзыв
// Если указан BookingID, бронирование помечается отрецензированным в той же
// транзакции, что и вставка отзыва. MarkReviewed идемпотентна: повторный отзыв
// по тому же бронированию оставляет has_reviewed = true без ошибки.
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("CreateReview: user=%s, villa=%s, rating=%d", req.UserID, req.VillaID, req.Rating)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("CreateReview: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !domain.IsValidRating(req.Rating) {
		s.logger.Warn("CreateReview: rating %d out of range", req.Rating)
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	// Автор отзыва: имя и аватар денормализуются в отзыв
	author, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("CreateReview: user id=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("CreateReview: failed to get user id=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateReview - get user: %v", ErrInternal, err)
	}

	// Привязка к бронированию: оно должно существовать и принадлежать автору
	if req.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("CreateReview: booking id=%s not found", *req.BookingID)
				return nil, ErrBookingNotFound
			}
			s.logger.Error("CreateReview: failed to get booking id=%s: %v", *req.BookingID, err)
			return nil, fmt.Errorf("%w: CreateReview - get booking: %v", ErrInternal, err)
		}
		if booking.UserID != req.UserID {
			s.logger.Warn("CreateReview: booking id=%s does not belong to user=%s", *req.BookingID, req.UserID)
			return nil, ErrAccessDenied
		}
	}

	review := &domain.Review{
		VillaID:    req.VillaID,
		UserID:     req.UserID,
		BookingID:  req.BookingID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	var created *domain.Review

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err = s.reviewRepo.Create(txCtx, review)
		if err != nil {
			return fmt.Errorf("%w: CreateReview - create review: %v", ErrInternal, err)
		}

		if req.BookingID != nil {
			if err := s.bookingRepo.MarkReviewed(txCtx, *req.BookingID); err != nil {
				return fmt.Errorf("%w: CreateReview - mark booking reviewed: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("CreateReview: transaction failed: %v", err)
		return nil, err
	}

	s.logger.Info("CreateReview: successfully created review id=%s", created.ID)
	return models.FromDomainReview(created), nil
}

// ListByVilla возвращает отзывы по вилле, сначала новые
func (s *Service) ListByVilla(ctx context.Context, villaID string) (*models.ReviewListResponse, error) {
	if villaID == "" {
		return nil, fmt.Errorf("%w: villaID is required", ErrInvalidInput)
	}

	reviews, err := s.reviewRepo.GetByVillaID(ctx, villaID)
	if err != nil {
		s.logger.Error("ListByVilla: repository error for villa=%s: %v", villaID, err)
		return nil, fmt.Errorf("%w: ListByVilla - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}
