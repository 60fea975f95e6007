package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"mechbook/internal/domain"
	"mechbook/internal/repository"
)

// Actor is the authenticated caller of a booking operation.
type Actor struct {
	UserID int64
	Role   domain.Role
}

type Service struct {
	bookings BookingRepository
	services ServiceRepository
	shops    ShopRepository
}

func NewService(bookings BookingRepository, services ServiceRepository, shops ShopRepository) *Service {
	return &Service{bookings: bookings, services: services, shops: shops}
}

// CreateBooking reserves a slot:
//  1. the service must exist, be active and belong to the requested shop;
//  2. the shop must be approved and active;
//  3. no other non-cancelled booking may hold (shop, date, slot);
//  4. the service price is snapshotted into the booking.
//
// The slot check races with concurrent requests for the same slot, so the
// insert relies on the storage-level unique index as the final arbiter and
// maps its violation to ErrSlotTaken.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if svc.ShopID != req.ShopID || !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	shop, err := s.shops.GetByID(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	if !shop.Visible() {
		return nil, ErrShopNotFound
	}

	taken, err := s.bookings.SlotTaken(ctx, req.ShopID, date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	b := &domain.Booking{
		UserID:      userID,
		ShopID:      req.ShopID,
		ServiceID:   req.ServiceID,
		Date:        date,
		TimeSlot:    req.TimeSlot,
		Status:      domain.BookingPending,
		TotalPrice:  svc.Price,
		VehicleInfo: req.VehicleInfo,
		Notes:       req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return b, nil
}

// GetBooking returns one booking to its owner or an admin.
func (s *Service) GetBooking(ctx context.Context, actor Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.UserID != actor.UserID && actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// ListShopBookings returns the bookings of the mechanic's own shop,
// optionally filtered by status ("" or "all" means no filter).
func (s *Service) ListShopBookings(ctx context.Context, ownerID int64, statusFilter string) ([]domain.Booking, error) {
	shop, err := s.shops.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	var status domain.BookingStatus
	if statusFilter != "" && statusFilter != "all" {
		status = domain.BookingStatus(statusFilter)
		if !status.Valid() {
			return nil, ErrValidation
		}
	}

	return s.bookings.ListByShop(ctx, shop.ID, status)
}

// UpdateStatus applies a status transition under the role rules:
// a USER may only cancel their own booking, a MECHANIC may apply any valid
// transition on their shop's bookings, an ADMIN on any booking. All actors
// are bound by the transition table; terminal states never change.
func (s *Service) UpdateStatus(ctx context.Context, actor Actor, bookingID int64, newStatusRaw string) (*domain.Booking, error) {
	newStatus := domain.BookingStatus(newStatusRaw)
	if !newStatus.Valid() {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	switch actor.Role {
	case domain.RoleUser:
		if b.UserID != actor.UserID {
			return nil, ErrForbidden
		}
		if newStatus != domain.BookingCancelled {
			return nil, ErrForbidden
		}
	case domain.RoleMechanic:
		shop, err := s.shops.GetByOwnerID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrShopNotFound
			}
			return nil, err
		}
		if b.ShopID != shop.ID {
			return nil, ErrBookingNotFound
		}
	case domain.RoleAdmin:
		// any booking
	default:
		return nil, ErrForbidden
	}

	if !domain.CanTransition(b.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}

	b.Status = newStatus
	return b, nil
}
