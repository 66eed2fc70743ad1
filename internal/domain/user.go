package domain

import "time"

// Role represents a user role in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents an account in the system
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AccessToken представляет выданный bearer-токен сессии
// Хранится явно, отзыв при logout удаляет только предъявленный токен
type AccessToken struct {
	ID        int64
	Token     string
	UserID    int64
	CreatedAt time.Time
}
