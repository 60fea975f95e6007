package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"mechbook/internal/domain"
)

const defaultRejectionReason = "Not specified"

type Service struct {
	shops      ShopRepository
	categories CategoryRepository
	users      UserRepository
	bookings   BookingRepository
}

func NewService(shops ShopRepository, categories CategoryRepository, users UserRepository, bookings BookingRepository) *Service {
	return &Service{shops: shops, categories: categories, users: users, bookings: bookings}
}

// ListMechanics returns registered shops with their owners, optionally
// filtered by approval status ("" or "all" means every shop).
func (s *Service) ListMechanics(ctx context.Context, statusFilter string) ([]domain.Shop, error) {
	var status domain.ShopStatus
	if statusFilter != "" && statusFilter != "all" {
		status = domain.ShopStatus(statusFilter)
		switch status {
		case domain.ShopPending, domain.ShopApproved, domain.ShopRejected:
		default:
			return nil, ErrInvalidShopStatus
		}
	}
	return s.shops.ListByStatus(ctx, status)
}

// ApproveShop makes the shop visible in search. Any earlier rejection
// reason is cleared so it cannot resurface on the mechanic's profile.
func (s *Service) ApproveShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	shop, err := s.getShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	shop.Status = domain.ShopApproved
	shop.RejectionReason = ""

	if err := s.shops.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *Service) RejectShop(ctx context.Context, shopID int64, reason string) (*domain.Shop, error) {
	shop, err := s.getShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultRejectionReason
	}

	shop.Status = domain.ShopRejected
	shop.RejectionReason = reason

	if err := s.shops.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *Service) getShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return shop, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	exists, err := s.categories.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	cat := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		VehicleType: domain.VehicleType(req.VehicleType),
		IsActive:    true,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil && !strings.EqualFold(*req.Name, cat.Name) {
		if len(*req.Name) < 2 {
			return nil, ErrValidation
		}
		exists, err := s.categories.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrCategoryExists
		}
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.VehicleType != nil {
		vt := domain.VehicleType(*req.VehicleType)
		if !vt.Valid() {
			return nil, ErrValidation
		}
		cat.VehicleType = vt
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categories.Delete(ctx, id)
}

// GetStats collects the dashboard counters. Today's window is the UTC
// calendar day, matching how booking dates are normalized.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	shops, err := s.shops.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.shops.CountByStatus(ctx, domain.ShopPending)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := s.bookings.CountCreatedBetween(ctx, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	return &Stats{
		Users:         users,
		Shops:         shops,
		PendingShops:  pending,
		Bookings:      bookings,
		TodayBookings: today,
	}, nil
}
