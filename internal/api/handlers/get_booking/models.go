package get_booking

import (
	bookingsModels "github.com/sbp-team/booking-platform/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	Booking *bookingsModels.BookingResponse `json:"booking"`
}
