package users

import "errors"

var (
	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
