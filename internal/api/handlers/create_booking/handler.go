package create_booking

import (
	"errors"
	"net/http"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/api/middleware"
	createBooking "github.com/sbp-team/booking-platform/internal/usecase/create_booking"
	"github.com/sbp-team/booking-platform/internal/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgServiceNotFound    = "Service not found."
	msgCreated            = "Booking created successfully"
)

// Сообщения для полей, пришедших с неверным JSON-типом
var fieldTypeMessages = map[string]string{
	"service_id":   "The service id field must be a number.",
	"booking_date": "The booking date is not a valid date.",
}

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Error("POST /bookings - No authenticated user in context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		if verrs, ok := handlers.TypeErrors(err, fieldTypeMessages); ok {
			h.logger.Warn("POST /bookings - Mistyped field: %v", err)
			handlers.RespondValidationErrors(w, verrs)
			return
		}

		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{
		UserID:      user.ID,
		ServiceID:   req.ServiceID,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%d", user.ID)
			handlers.RespondValidationErrors(w, verrs)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: user_id=%d, service_id=%d", user.ID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, user_id=%d", result.ID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{
		Message: msgCreated,
		Booking: result,
	})
}
