package check_availability

import "time"

// Request модель запроса проверки доступности дат
type Request struct {
	VillaID   string    // ID виллы
	StartDate time.Time // Дата заезда
	EndDate   time.Time // Дата выезда (не включается, полуоткрытый интервал)
}

// Response модель ответа проверки доступности
type Response struct {
	VillaID   string    // ID виллы
	StartDate time.Time // Нормализованная дата заезда
	EndDate   time.Time // Нормализованная дата выезда
	Available bool      // Свободен ли диапазон
}
