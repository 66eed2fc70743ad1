package domain

// Business validation constants
const (
	MaxServiceNameLength = 255
	MinPasswordLength    = 8
	MinServicePrice      = 0.0
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
