package mechanic

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mechbook/internal/domain"
)

// Service covers everything a mechanic does with their own shop. Every
// operation resolves the shop through the owner id from the token, so a
// mechanic can never reach another shop's data.
type Service struct {
	shops    ShopRepository
	services ServiceRepository
}

func NewService(shops ShopRepository, services ServiceRepository) *Service {
	return &Service{shops: shops, services: services}
}

func (s *Service) ownShop(ctx context.Context, ownerID int64) (*domain.Shop, error) {
	shop, err := s.shops.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return shop, nil
}

func (s *Service) GetShop(ctx context.Context, ownerID int64) (*domain.Shop, error) {
	return s.ownShop(ctx, ownerID)
}

// UpdateShop applies the non-nil fields of req to the mechanic's shop.
// Approval status and rejection reason stay admin-only.
func (s *Service) UpdateShop(ctx context.Context, ownerID int64, req UpdateShopRequest) (*domain.Shop, error) {
	shop, err := s.ownShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if len(*req.Name) < 2 {
			return nil, ErrValidation
		}
		shop.Name = *req.Name
	}
	if req.Description != nil {
		shop.Description = *req.Description
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.City != nil {
		shop.City = *req.City
	}
	if req.State != nil {
		shop.State = *req.State
	}
	if req.Pincode != nil {
		shop.Pincode = *req.Pincode
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Email != nil {
		shop.Email = *req.Email
	}
	if req.OpenTime != nil {
		shop.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		shop.CloseTime = *req.CloseTime
	}
	if req.WorkingDays != nil {
		shop.WorkingDays = req.WorkingDays
	}
	if req.IsActive != nil {
		shop.IsActive = *req.IsActive
	}
	if req.VehicleTypes != nil {
		if len(req.VehicleTypes) == 0 {
			return nil, ErrValidation
		}
		types := make([]domain.VehicleType, 0, len(req.VehicleTypes))
		for _, raw := range req.VehicleTypes {
			vt := domain.VehicleType(raw)
			if !vt.Valid() {
				return nil, ErrValidation
			}
			types = append(types, vt)
		}
		shop.VehicleTypes = types
	}

	if err := s.shops.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *Service) ListServices(ctx context.Context, ownerID int64) ([]domain.Service, error) {
	shop, err := s.ownShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.services.ListByShop(ctx, shop.ID)
}

func (s *Service) CreateService(ctx context.Context, ownerID int64, req CreateServiceRequest) (*domain.Service, error) {
	shop, err := s.ownShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	svc := &domain.Service{
		ShopID:      shop.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ownService loads a service and checks it belongs to the mechanic's shop.
// A foreign service reads as not-found rather than forbidden, so service ids
// of other shops cannot be probed.
func (s *Service) ownService(ctx context.Context, ownerID, serviceID int64) (*domain.Service, error) {
	shop, err := s.ownShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if svc.ShopID != shop.ID {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, ownerID, serviceID int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.ownService(ctx, ownerID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if len(*req.Name) < 2 {
			return nil, ErrValidation
		}
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, ErrValidation
		}
		svc.Price = *req.Price
	}
	if req.Duration != nil {
		if *req.Duration < 5 {
			return nil, ErrValidation
		}
		svc.Duration = *req.Duration
	}
	if req.CategoryID != nil {
		svc.CategoryID = req.CategoryID
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, ownerID, serviceID int64) error {
	svc, err := s.ownService(ctx, ownerID, serviceID)
	if err != nil {
		return err
	}
	return s.services.Delete(ctx, svc.ID)
}
