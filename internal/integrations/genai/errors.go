package genai

import "errors"

var (
	// ErrNotConfigured возвращается, когда API-ключ не задан
	// Вызывающая сторона показывает пользователю заглушку вместо сгенерированного текста
	ErrNotConfigured = errors.New("genai client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("genai client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("genai client: invalid response")
)
