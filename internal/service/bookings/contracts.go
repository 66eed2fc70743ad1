package bookings

import (
	"context"
	"time"

	"github.com/sbp-team/booking-platform/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDForUser(ctx context.Context, id int64, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	Update(ctx context.Context, id int64, userID int64, update domain.BookingUpdate) error
	Delete(ctx context.Context, id int64, userID int64) error
}

// TimeProvider источник текущего времени
// Вынесен в интерфейс для детерминированных тестов валидации дат
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальное системное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
