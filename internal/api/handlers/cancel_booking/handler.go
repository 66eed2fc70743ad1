package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/api/middleware"
	"github.com/sbp-team/booking-platform/internal/service/bookings"
)

const (
	msgNotFound  = "Booking not found."
	msgCancelled = "Booking cancelled successfully"
)

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

// Handle DELETE /api/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Error("DELETE /bookings/{id} - No authenticated user in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		// Нечисловой ID неотличим от несуществующего
		h.logger.Warn("DELETE /bookings/{id} - Non-numeric booking ID %q", vars["bookingId"])
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	if err := h.service.Cancel(r.Context(), bookingID, user.ID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d, user_id=%d", bookingID, user.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d, user_id=%d", bookingID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{Message: msgCancelled})
}
