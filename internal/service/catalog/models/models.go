package models

import (
	"time"

	"github.com/sbp-team/booking-platform/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
// Status по умолчанию true: новая услуга сразу видна клиентам
type CreateServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Status      *bool    `json:"status"`
}

// UpdateServiceRequest запрос на частичное обновление услуги
// Отсутствующее поле сохраняет прежнее значение, присутствующее валидируется
type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Status      *bool    `json:"status"`
}

// ToDomainUpdate конвертирует request в domain модель частичного обновления
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Status:      r.Status,
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, service := range services {
		if serviceResp := FromDomainService(service); serviceResp != nil {
			resp.Services = append(resp.Services, *serviceResp)
		}
	}

	return resp
}
