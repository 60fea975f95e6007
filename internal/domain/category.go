package domain

import "time"

// Category groups services by kind of work, admin-managed.
type Category struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name" validate:"required,min=2"`
	Description string      `json:"description,omitempty"`
	VehicleType VehicleType `json:"vehicle_type"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
