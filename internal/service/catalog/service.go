package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbp-team/booking-platform/internal/domain"
	serviceRepo "github.com/sbp-team/booking-platform/internal/infra/storage/service"
	"github.com/sbp-team/booking-platform/internal/service/catalog/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

// Сообщения ошибок валидации в формате исходного API
const (
	msgNameRequired        = "Service name is required."
	msgNameTooLong         = "Service name cannot exceed 255 characters."
	msgDescriptionRequired = "Service description is required."
	msgPriceRequired       = "Service price is required."
	msgPriceNegative       = "Price cannot be negative."
	msgServiceInUse        = "Cannot delete a service with existing bookings."
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает активные услуги (клиентская витрина)
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d active services", len(services))
	return models.FromDomainServiceList(services), nil
}

// ListAll возвращает все услуги независимо от флага активности
// Ролевая проверка выполняется на уровне маршрутизации (RequireAdmin)
func (s *Service) ListAll(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// Get возвращает услугу по ID независимо от флага активности
func (s *Service) Get(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Get: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Get: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q", req.Name)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Новая услуга активна, если флаг явно не снят
	status := true
	if req.Status != nil {
		status = *req.Status
	}

	service := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Status:      status,
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%d created", created.ID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу
// Переданные поля валидируются, отсутствующие сохраняют прежние значения
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service id=%d updated", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		}
		if errors.Is(err, serviceRepo.ErrServiceInUse) {
			s.logger.Warn("Delete: service id=%d has bookings", id)
			return validation.Errors{"service": {msgServiceInUse}}
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service id=%d deleted", id)
	return nil
}

// validateCreate валидирует запрос создания услуги: все поля обязательны
func validateCreate(req *models.CreateServiceRequest) error {
	errs := validation.Errors{}

	switch {
	case req.Name == "":
		errs.Add("name", msgNameRequired)
	case len(req.Name) > domain.MaxServiceNameLength:
		errs.Add("name", msgNameTooLong)
	}

	if req.Description == "" {
		errs.Add("description", msgDescriptionRequired)
	}

	switch {
	case req.Price == nil:
		errs.Add("price", msgPriceRequired)
	case *req.Price < domain.MinServicePrice:
		errs.Add("price", msgPriceNegative)
	}

	if errs.Any() {
		return errs
	}
	return nil
}

// validateUpdate валидирует запрос обновления услуги
// Поле проверяется только если оно передано ("sometimes" семантика)
func validateUpdate(req *models.UpdateServiceRequest) error {
	errs := validation.Errors{}

	if req.Name != nil {
		switch {
		case *req.Name == "":
			errs.Add("name", msgNameRequired)
		case len(*req.Name) > domain.MaxServiceNameLength:
			errs.Add("name", msgNameTooLong)
		}
	}

	if req.Description != nil && *req.Description == "" {
		errs.Add("description", msgDescriptionRequired)
	}

	if req.Price != nil && *req.Price < domain.MinServicePrice {
		errs.Add("price", msgPriceNegative)
	}

	if errs.Any() {
		return errs
	}
	return nil
}
