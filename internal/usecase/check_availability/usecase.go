package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	villaRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/villa"
)

// UseCase use case проверки доступности дат виллы
//
// Чистое чтение без побочных эффектов, может вызываться сколько угодно раз.
// Проверяет только пересечение с подтверждёнными бронированиями:
// упорядоченность и актуальность дат - ответственность пути записи
// (create_booking), где они проверяются до обращения к хранилищу.
type UseCase struct {
	bookingRepo BookingRepository
	villaRepo   VillaRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, villaRepo VillaRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		villaRepo:   villaRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VillaID == "" {
		return nil, fmt.Errorf("%w: villaID is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	// Нормализуем даты: запросы на один календарный день эквивалентны
	// независимо от времени отправки
	startDate := domain.NormalizeDate(req.StartDate)
	endDate := domain.NormalizeDate(req.EndDate)

	if _, err := uc.villaRepo.GetByID(ctx, req.VillaID); err != nil {
		if errors.Is(err, villaRepo.ErrVillaNotFound) {
			uc.logger.Warn("CheckAvailability: villa id=%s not found", req.VillaID)
			return nil, ErrVillaNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get villa id=%s: %v", req.VillaID, err)
		return nil, fmt.Errorf("%w: failed to get villa: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetConfirmedByVillaID(ctx, req.VillaID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for villa=%s: %v", req.VillaID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	available := true
	for _, booking := range bookings {
		if booking.Blocks() && booking.Overlaps(startDate, endDate) {
			available = false
			break
		}
	}

	uc.logger.Info("CheckAvailability: villa=%s, dates=%s..%s, available=%t",
		req.VillaID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), available)

	return &Response{
		VillaID:   req.VillaID,
		StartDate: startDate,
		EndDate:   endDate,
		Available: available,
	}, nil
}
