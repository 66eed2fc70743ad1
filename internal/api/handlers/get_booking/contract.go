package get_booking

import (
	"context"

	bookingsModels "github.com/sbp-team/booking-platform/internal/service/bookings/models"
)

type BookingsService interface {
	GetForUser(ctx context.Context, id int64, userID int64) (*bookingsModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
