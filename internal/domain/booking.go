package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// Valid reports whether st is one of the known booking statuses.
func (st BookingStatus) Valid() bool {
	switch st {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether st permits no further transitions.
func (st BookingStatus) Terminal() bool {
	return st == BookingCompleted || st == BookingCancelled
}

// bookingTransitions is the full status transition table. Skipping
// intermediate states is not allowed for anyone, admins included.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingCancelled},
	BookingConfirmed:  {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking is a reservation of one service at one shop for one user at a
// specific date and time slot. TotalPrice is a snapshot of the service price
// at creation time.
type Booking struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	ShopID      int64         `json:"shop_id"`
	ServiceID   int64         `json:"service_id"`
	Date        time.Time     `json:"date"`
	TimeSlot    string        `json:"time_slot"`
	Status      BookingStatus `json:"status"`
	TotalPrice  float64       `json:"total_price"`
	VehicleInfo string        `json:"vehicle_info,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	User    *User    `json:"user,omitempty"`
	Shop    *Shop    `json:"shop,omitempty"`
	Service *Service `json:"service,omitempty"`
}
