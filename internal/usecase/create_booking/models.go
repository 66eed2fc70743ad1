package create_booking

import (
	"github.com/sbp-team/booking-platform/internal/service/bookings/models"
)

// Request модель запроса на создание бронирования
// Дата приходит сырой строкой: ее разбор является частью валидации
type Request struct {
	UserID      int64  // ID владельца (из токена, не из тела запроса)
	ServiceID   int64  // ID бронируемой услуги
	BookingDate string // Дата бронирования, "2025-10-15"
}

// Response модель ответа с созданным бронированием
// Бронирование возвращается вместе с присоединенной услугой
type Response = models.BookingResponse
