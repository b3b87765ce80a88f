package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrSerializationFailure возвращается, когда PostgreSQL прервал
	// сериализуемую транзакцию из-за конфликта с параллельной (SQLSTATE 40001).
	// Транзакцию можно безопасно повторить
	ErrSerializationFailure = errors.New("booking.repository: serialization failure")
)
