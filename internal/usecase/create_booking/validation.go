package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.VillaID == "" {
		return fmt.Errorf("%w: villaID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateDateRange проверяет упорядоченность и актуальность дат
// Ожидает нормализованные даты (полночь UTC)
func validateDateRange(start, end, now time.Time) error {
	if !start.Before(end) {
		return ErrInvalidDateRange
	}

	if start.Before(domain.NormalizeDate(now)) {
		return ErrDateInPast
	}

	return nil
}

// hasOverlap проверяет пересечение запрошенного диапазона [start, end)
// с существующими бронированиями
// Учитываются только бронирования, блокирующие свой диапазон (confirmed);
// стыковые бронирования (выезд утром, заезд в тот же день) пересечением не считаются
func hasOverlap(start, end time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.Blocks() {
			continue
		}
		if booking.Overlaps(start, end) {
			return true
		}
	}
	return false
}
