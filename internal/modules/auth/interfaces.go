package auth

import (
	"context"

	"mechbook/internal/domain"
)

// UserRepository — only the methods the auth service uses
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	CreateWithShop(ctx context.Context, u *domain.User, s *domain.Shop) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
}

// ShopRepository — lookup of a mechanic's own shop for session payloads
type ShopRepository interface {
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Shop, error)
}

type jwtService interface {
	GenerateToken(userID int64, email, role string) (string, error)
}
