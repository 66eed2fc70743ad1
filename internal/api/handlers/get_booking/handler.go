package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/api/middleware"
	"github.com/sbp-team/booking-platform/internal/service/bookings"
)

const msgNotFound = "Booking not found."

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

// Handle GET /api/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Error("GET /bookings/{id} - No authenticated user in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		// Нечисловой ID неотличим от несуществующего
		h.logger.Warn("GET /bookings/{id} - Non-numeric booking ID %q", vars["bookingId"])
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	result, err := h.service.GetForUser(r.Context(), bookingID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d, user_id=%d", bookingID, user.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookingResponse{Booking: result})
}
