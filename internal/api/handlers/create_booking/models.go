package create_booking

import (
	createBooking "github.com/sbp-team/booking-platform/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Дата принимается строкой и валидируется внутри usecase
type CreateBookingRequest struct {
	ServiceID   int64  `json:"service_id"`
	BookingDate string `json:"booking_date"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message string                  `json:"message"`
	Booking *createBooking.Response `json:"booking"`
}
