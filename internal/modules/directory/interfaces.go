package directory

import (
	"context"

	"mechbook/internal/domain"
	"mechbook/internal/repository"
)

type ShopRepository interface {
	Search(ctx context.Context, f repository.ShopFilters) ([]domain.Shop, error)
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
}

type ServiceRepository interface {
	ListActiveByShop(ctx context.Context, shopID int64) ([]domain.Service, error)
	ActiveByShopIDs(ctx context.Context, shopIDs []int64) ([]domain.Service, error)
}

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
}
