package update_service

import (
	"context"

	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

type CatalogService interface {
	Update(ctx context.Context, id int64, req *catalogModels.UpdateServiceRequest) (*catalogModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
