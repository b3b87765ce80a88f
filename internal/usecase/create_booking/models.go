package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID  string // ID пользователя
	VillaID string // ID виллы

	// Даты заезда и выезда, полуоткрытый интервал [StartDate, EndDate)
	StartDate time.Time
	EndDate   time.Time

	// TotalPrice заявленная клиентом стоимость проживания
	// 0 - не заявлена, используется серверный расчёт; иначе сверяется с ним
	TotalPrice int64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string    // ID созданного бронирования
	VillaID     string    // ID виллы
	UserID      string    // ID пользователя
	StartDate   time.Time // Дата заезда
	EndDate     time.Time // Дата выезда
	Nights      int       // Количество ночей
	TotalPrice  int64     // Итоговая стоимость (серверный расчёт)
	Status      string    // Статус бронирования
	HasReviewed bool      // Оставлен ли отзыв по этому бронированию
	CreatedAt   time.Time // Время создания
	UpdatedAt   time.Time // Время обновления
}
