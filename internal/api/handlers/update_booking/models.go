package update_booking

import (
	bookingsModels "github.com/sbp-team/booking-platform/internal/service/bookings/models"
)

// UpdateBookingResponse HTTP response model
type UpdateBookingResponse struct {
	Message string                          `json:"message"`
	Booking *bookingsModels.BookingResponse `json:"booking"`
}
