package mechanic

// UpdateShopRequest is a partial update: nil fields keep their current value.
type UpdateShopRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Pincode      *string  `json:"pincode"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	VehicleTypes []string `json:"vehicle_types"`
	OpenTime     *string  `json:"open_time"`
	CloseTime    *string  `json:"close_time"`
	WorkingDays  []string `json:"working_days"`
	IsActive     *bool    `json:"is_active"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,min=5"`
	CategoryID  *int64  `json:"category_id"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	CategoryID  *int64   `json:"category_id"`
	IsActive    *bool    `json:"is_active"`
}
