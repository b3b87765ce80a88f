package create_booking

import "errors"

var (
	// ErrVillaNotFound возвращается, когда вилла не найдена
	ErrVillaNotFound = errors.New("create_booking: villa not found")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: end date must be after start date")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("create_booking: start date is in the past")

	// ErrDatesUnavailable возвращается, когда диапазон дат пересекается с
	// существующим подтверждённым бронированием. Сюда же попадает проигрыш
	// гонки: конфликт, обнаруженный при повторной проверке внутри транзакции,
	// для вызывающей стороны неотличим от обычной занятости дат
	ErrDatesUnavailable = errors.New("create_booking: dates are not available")

	// ErrPriceMismatch возвращается, когда заявленная клиентом стоимость
	// не совпадает с рассчитанной на сервере
	ErrPriceMismatch = errors.New("create_booking: total price mismatch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
