package check_availability

import "errors"

var (
	// ErrVillaNotFound возвращается, когда вилла не найдена
	ErrVillaNotFound = errors.New("check_availability: villa not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
