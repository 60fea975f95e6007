package auth

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=2"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`

	// Shop details, required when role is MECHANIC.
	ShopName     string   `json:"shop_name"`
	ShopAddress  string   `json:"shop_address"`
	ShopCity     string   `json:"shop_city"`
	ShopState    string   `json:"shop_state"`
	ShopPincode  string   `json:"shop_pincode"`
	ShopPhone    string   `json:"shop_phone"`
	VehicleTypes []string `json:"vehicle_types"`
}

// shopDetails is validated separately so a plain USER registration never
// trips the shop-field rules.
type shopDetails struct {
	Name         string   `validate:"required,min=2"`
	Address      string   `validate:"required"`
	City         string   `validate:"required"`
	State        string   `validate:"required"`
	Pincode      string   `validate:"required"`
	Phone        string   `validate:"required"`
	VehicleTypes []string `validate:"required,min=1,dive,oneof=TWO_WHEELER FOUR_WHEELER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type UserPublic struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ShopSummary rides along on login/me responses for mechanics.
type ShopSummary struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
