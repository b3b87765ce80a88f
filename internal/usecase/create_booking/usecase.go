package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/booking"
	villaRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/villa"
)

// maxSerializationRetries - число повторов сериализуемой транзакции после
// конфликта сериализации. При повторе перечитываются уже закоммиченные
// конкурентом бронирования, и проверка пересечения даёт обычный отказ
const maxSerializationRetries = 2

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	villaRepo    VillaRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	villaRepo VillaRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		villaRepo:    villaRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции
// с блокировкой существующих бронирований виллы (FOR UPDATE): два параллельных
// запроса на пересекающиеся даты одной виллы не могут оба пройти проверку.
// Бронирования разных вилл полностью независимы.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, villa=%s, dates=%s..%s",
		req.UserID, req.VillaID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем даты к полуночи: время суток в датах заезда/выезда
	// семантики не несёт
	startDate := domain.NormalizeDate(req.StartDate)
	endDate := domain.NormalizeDate(req.EndDate)

	// 3. Проверяем упорядоченность и актуальность дат до обращения к БД
	now := uc.timeProvider.Now()
	if err := validateDateRange(startDate, endDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date range validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 4. Проверка доступности и вставка в одной сериализуемой транзакции.
	// Проигравшая гонку транзакция обрывается PostgreSQL конфликтом
	// сериализации (40001) и повторяется: на повторе проверка пересечения
	// видит бронирование победителя и возвращает ErrDatesUnavailable
	var err error
	for attempt := 0; attempt <= maxSerializationRetries; attempt++ {
		if attempt > 0 {
			uc.logger.Warn("CreateBooking: serialization conflict for villa=%s, retry %d/%d",
				req.VillaID, attempt, maxSerializationRetries)
		}

		err = uc.doCreate(ctx, req, startDate, endDate, &result)
		if !bookingRepo.IsSerializationFailure(err) {
			break
		}
	}

	// Повторы исчерпаны, а конфликт сохраняется: даты оспариваются
	// конкурентными запросами, для клиента это тот же отказ по занятости
	if bookingRepo.IsSerializationFailure(err) {
		uc.logger.Warn("CreateBooking: serialization conflict persists for villa=%s, treating as unavailable", req.VillaID)
		return nil, ErrDatesUnavailable
	}

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%d", result.ID, result.TotalPrice)

	return &Response{
		ID:          result.ID,
		VillaID:     result.VillaID,
		UserID:      result.UserID,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		Nights:      result.Nights(),
		TotalPrice:  result.TotalPrice,
		Status:      string(result.Status),
		HasReviewed: result.HasReviewed,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// doCreate выполняет одну попытку транзакции проверки доступности и вставки
func (uc *UseCase) doCreate(ctx context.Context, req *Request, startDate, endDate time.Time, result **domain.Booking) error {
	return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем виллу - источник актуальных тарифов
		villa, err := uc.villaRepo.GetByID(txCtx, req.VillaID)
		if err != nil {
			if errors.Is(err, villaRepo.ErrVillaNotFound) {
				uc.logger.Warn("CreateBooking: villa id=%s not found", req.VillaID)
				return ErrVillaNotFound
			}
			uc.logger.Error("CreateBooking: failed to get villa id=%s: %v", req.VillaID, err)
			return fmt.Errorf("%w: failed to get villa: %v", ErrInternal, err)
		}

		// 4.2. Серверный расчёт стоимости: nights * effectiveRate
		// Заявленная клиентом стоимость сверяется с расчётом, а не принимается на веру
		nights := domain.Nights(startDate, endDate)
		totalPrice := villa.TotalPriceFor(nights)

		if req.TotalPrice != 0 && req.TotalPrice != totalPrice {
			uc.logger.Warn("CreateBooking: price mismatch for villa=%s: client=%d, server=%d",
				req.VillaID, req.TotalPrice, totalPrice)
			return fmt.Errorf("%w: client=%d, server=%d", ErrPriceMismatch, req.TotalPrice, totalPrice)
		}

		// 4.3. Получаем подтверждённые бронирования виллы с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetConfirmedByVillaID(txCtx, req.VillaID)
		if err != nil {
			if bookingRepo.IsSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to get bookings for villa=%s: %v", req.VillaID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.4. Проверяем пересечение дат
		if hasOverlap(startDate, endDate, existing) {
			uc.logger.Warn("CreateBooking: dates %s..%s not available for villa=%s",
				startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), req.VillaID)
			return ErrDatesUnavailable
		}

		// 4.5. Создаем бронирование
		// Статус сразу confirmed: оплата в сервисе не моделируется, внешнего
		// шага подтверждения нет
		booking := &domain.Booking{
			VillaID:    req.VillaID,
			UserID:     req.UserID,
			StartDate:  startDate,
			EndDate:    endDate,
			TotalPrice: totalPrice,
			Status:     domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if bookingRepo.IsSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		*result = created
		return nil
	})
}
