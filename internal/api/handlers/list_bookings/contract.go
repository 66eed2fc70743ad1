package list_bookings

import (
	"context"

	bookingsModels "github.com/sbp-team/booking-platform/internal/service/bookings/models"
)

type BookingsService interface {
	ListForUser(ctx context.Context, userID int64) (*bookingsModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
