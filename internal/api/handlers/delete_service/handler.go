package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/service/catalog"
	"github.com/sbp-team/booking-platform/internal/validation"
)

const (
	msgNotFound = "Service not found."
	msgDeleted  = "Service deleted successfully"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		// Нечисловой ID неотличим от несуществующего
		h.logger.Warn("DELETE /services/{id} - Non-numeric service ID %q", vars["serviceId"])
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), serviceID); err != nil {
		var verrs validation.Errors
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &verrs):
			h.logger.Warn("DELETE /services/{id} - Service has bookings: service_id=%d", serviceID)
			handlers.RespondValidationErrors(w, verrs)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, DeleteServiceResponse{Message: msgDeleted})
}
