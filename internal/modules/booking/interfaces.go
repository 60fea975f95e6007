package booking

import (
	"context"
	"time"

	"mechbook/internal/domain"
)

// BookingRepository defines the storage operations the booking service needs
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SlotTaken(ctx context.Context, shopID int64, date time.Time, timeSlot string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListByShop(ctx context.Context, shopID int64, status domain.BookingStatus) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Shop, error)
}
