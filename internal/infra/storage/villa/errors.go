package villa

import "errors"

var (
	// ErrVillaNotFound возвращается, когда вилла не найдена
	ErrVillaNotFound = errors.New("villa.repository: villa not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("villa.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("villa.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("villa.repository: failed to scan row")
)
