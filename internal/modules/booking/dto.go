package booking

type CreateBookingRequest struct {
	ShopID      int64  `json:"shop_id" binding:"required"`
	ServiceID   int64  `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // "2006-01-02"
	TimeSlot    string `json:"time_slot" binding:"required"`
	VehicleInfo string `json:"vehicle_info"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
