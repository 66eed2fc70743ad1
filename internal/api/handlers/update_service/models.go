package update_service

import (
	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

// UpdateServiceResponse HTTP response model
type UpdateServiceResponse struct {
	Message string                         `json:"message"`
	Service *catalogModels.ServiceResponse `json:"service"`
}
