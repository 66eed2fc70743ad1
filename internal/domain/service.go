package domain

import "time"

// Service represents a bookable offering in the catalog
// Status is the active flag: inactive services are hidden from customers
// and cannot be booked, but historical bookings keep referencing them
type Service struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Status      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceUpdate частичное обновление услуги
// nil-поле означает "оставить прежнее значение"
type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Status      *bool
}

// IsEmpty returns true if the update changes nothing
func (u *ServiceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Status == nil
}
