package admin

import (
	"context"
	"time"

	"mechbook/internal/domain"
)

type ShopRepository interface {
	ListByStatus(ctx context.Context, status domain.ShopStatus) ([]domain.Shop, error)
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	Update(ctx context.Context, s *domain.Shop) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ShopStatus) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Category, error)
}

type UserRepository interface {
	Count(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
