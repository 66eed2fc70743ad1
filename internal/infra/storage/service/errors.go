package service

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	// (в том числе когда услуга существует, но неактивна, при выборке активных)
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrServiceInUse возвращается при попытке удалить услугу,
	// на которую ссылаются бронирования
	ErrServiceInUse = errors.New("service.repository: service has bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
