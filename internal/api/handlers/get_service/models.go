package get_service

import (
	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	Service *catalogModels.ServiceResponse `json:"service"`
}
