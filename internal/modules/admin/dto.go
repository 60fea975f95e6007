package admin

type RejectShopRequest struct {
	Reason string `json:"reason"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description"`
	VehicleType string `json:"vehicle_type" binding:"required,oneof=TWO_WHEELER FOUR_WHEELER"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	VehicleType *string `json:"vehicle_type"`
	IsActive    *bool   `json:"is_active"`
}

// Stats is the admin dashboard snapshot.
type Stats struct {
	Users         int64 `json:"users"`
	Shops         int64 `json:"shops"`
	PendingShops  int64 `json:"pending_shops"`
	Bookings      int64 `json:"bookings"`
	TodayBookings int64 `json:"today_bookings"`
}
