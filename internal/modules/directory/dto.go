package directory

import "mechbook/internal/domain"

// SearchQuery carries the public shop search filters.
type SearchQuery struct {
	Query       string
	City        string
	VehicleType string
}

// ServiceSummary is the trimmed service view shown in search results.
type ServiceSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ShopSummary is a search-result card: the shop plus its cheapest active
// services and the total active service count.
type ShopSummary struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	Address      string               `json:"address"`
	City         string               `json:"city"`
	State        string               `json:"state"`
	Pincode      string               `json:"pincode"`
	Phone        string               `json:"phone"`
	VehicleTypes []domain.VehicleType `json:"vehicle_types"`
	OpenTime     string               `json:"open_time,omitempty"`
	CloseTime    string               `json:"close_time,omitempty"`
	WorkingDays  []string             `json:"working_days,omitempty"`
	Services     []ServiceSummary     `json:"services"`
	ServiceCount int                  `json:"service_count"`
}

// ShopDetail is the full public shop profile with its active services.
type ShopDetail struct {
	domain.Shop
	Services []domain.Service `json:"services"`
}
