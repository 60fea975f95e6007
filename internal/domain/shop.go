package domain

import "time"

type ShopStatus string

const (
	ShopPending  ShopStatus = "PENDING"
	ShopApproved ShopStatus = "APPROVED"
	ShopRejected ShopStatus = "REJECTED"
)

type VehicleType string

const (
	TwoWheeler  VehicleType = "TWO_WHEELER"
	FourWheeler VehicleType = "FOUR_WHEELER"
)

// Valid reports whether v is one of the known vehicle types.
func (v VehicleType) Valid() bool {
	return v == TwoWheeler || v == FourWheeler
}

// Shop is a mechanic's registered place of business. It is created together
// with the mechanic user at registration and stays hidden from search until
// an admin approves it.
type Shop struct {
	ID              int64         `json:"id"`
	OwnerID         int64         `json:"owner_id"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Address         string        `json:"address"`
	City            string        `json:"city"`
	State           string        `json:"state"`
	Pincode         string        `json:"pincode"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email,omitempty"`
	VehicleTypes    []VehicleType `json:"vehicle_types"`
	Status          ShopStatus    `json:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	OpenTime        string        `json:"open_time,omitempty"`
	CloseTime       string        `json:"close_time,omitempty"`
	WorkingDays     []string      `json:"working_days,omitempty"`
	IsActive        bool          `json:"is_active"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Owner    *User     `json:"owner,omitempty"`
	Services []Service `json:"services,omitempty"`
}

// Visible reports whether the shop may appear in search results and accept
// bookings.
func (s *Shop) Visible() bool {
	return s.Status == ShopApproved && s.IsActive
}

// ServesVehicle reports whether the shop handles the given vehicle type.
func (s *Shop) ServesVehicle(v VehicleType) bool {
	for _, t := range s.VehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}
