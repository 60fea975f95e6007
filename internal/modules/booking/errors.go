package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrServiceNotFound   = errors.New("service not found")
	ErrShopNotFound      = errors.New("shop not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSlotTaken         = errors.New("time slot is already booked")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)
