package update_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/service/catalog"
	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgNotFound           = "Service not found."
	msgUpdated            = "Service updated successfully"
)

// Сообщения для полей, пришедших с неверным JSON-типом
var fieldTypeMessages = map[string]string{
	"name":        "The name field must be a string.",
	"description": "The description field must be a string.",
	"price":       "Price must be a number.",
	"status":      "The status field must be true or false.",
}

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

// Handle PUT /api/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		// Нечисловой ID неотличим от несуществующего
		h.logger.Warn("PUT /services/{id} - Non-numeric service ID %q", vars["serviceId"])
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var req catalogModels.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		if verrs, ok := handlers.TypeErrors(err, fieldTypeMessages); ok {
			h.logger.Warn("PUT /services/{id} - Mistyped field: %v", err)
			handlers.RespondValidationErrors(w, verrs)
			return
		}

		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("PUT /services/{id} - Validation failed: service_id=%d", serviceID)
			handlers.RespondValidationErrors(w, verrs)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, UpdateServiceResponse{
		Message: msgUpdated,
		Service: result,
	})
}
