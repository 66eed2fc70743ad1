package cancel_booking

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Message string `json:"message"`
}
