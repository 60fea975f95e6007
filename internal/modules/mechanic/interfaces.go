package mechanic

import (
	"context"

	"mechbook/internal/domain"
)

type ShopRepository interface {
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Shop, error)
	Update(ctx context.Context, s *domain.Shop) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
	ListByShop(ctx context.Context, shopID int64) ([]domain.Service, error)
}
