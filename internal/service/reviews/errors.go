package reviews

import "errors"

var (
	// ErrUserNotFound возвращается, когда автор отзыва не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrBookingNotFound возвращается, когда указанное бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается при попытке привязать отзыв к чужому бронированию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
