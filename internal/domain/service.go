package domain

import "time"

// Service is a priced, timed offering a shop provides.
type Service struct {
	ID          int64     `json:"id"`
	ShopID      int64     `json:"shop_id"`
	Name        string    `json:"name" validate:"required,min=2"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Duration    int       `json:"duration" validate:"required,min=5"` // minutes
	CategoryID  *int64    `json:"category_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category *Category `json:"category,omitempty"`
}
