package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда активная услуга с таким ID не найдена
	// Существующая, но неактивная услуга дает ту же ошибку: ID скрытых услуг
	// клиентам не раскрываются
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
