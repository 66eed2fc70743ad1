package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/api/middleware"
	"github.com/sbp-team/booking-platform/internal/service/bookings"
	bookingsModels "github.com/sbp-team/booking-platform/internal/service/bookings/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgNotFound           = "Booking not found."
	msgUpdated            = "Booking updated successfully"
)

// Сообщения для полей, пришедших с неверным JSON-типом
var fieldTypeMessages = map[string]string{
	"booking_date": "The booking date is not a valid date.",
	"status":       "The selected status is invalid.",
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Error("PUT /bookings/{id} - No authenticated user in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		// Нечисловой ID неотличим от несуществующего
		h.logger.Warn("PUT /bookings/{id} - Non-numeric booking ID %q", vars["bookingId"])
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var req bookingsModels.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		if verrs, ok := handlers.TypeErrors(err, fieldTypeMessages); ok {
			h.logger.Warn("PUT /bookings/{id} - Mistyped field: %v", err)
			handlers.RespondValidationErrors(w, verrs)
			return
		}

		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), bookingID, user.ID, &req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("PUT /bookings/{id} - Validation failed: booking_id=%d, user_id=%d", bookingID, user.ID)
			handlers.RespondValidationErrors(w, verrs)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d, user_id=%d", bookingID, user.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%d, user_id=%d", bookingID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, UpdateBookingResponse{
		Message: msgUpdated,
		Booking: result,
	})
}
