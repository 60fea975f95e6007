package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mechbook/internal/domain"
	"mechbook/internal/pkg/validator"
)

// Service contains all business logic for authentication
type Service struct {
	users UserRepository
	shops ShopRepository
	jwt   jwtService
}

func NewService(users UserRepository, shops ShopRepository, jwt jwtService) *Service {
	return &Service{users: users, shops: shops, jwt: jwt}
}

type RegisterResult struct {
	User  *domain.User
	Token string
}

type LoginResult struct {
	User  *domain.User
	Shop  *ShopSummary
	Token string
}

// Register creates the user and, for mechanics, the pending shop in the
// same transaction. Self-registration as ADMIN is not allowed.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleMechanic {
		return nil, ErrInvalidRole
	}

	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
	}

	if role == domain.RoleMechanic {
		details := shopDetails{
			Name:         req.ShopName,
			Address:      req.ShopAddress,
			City:         req.ShopCity,
			State:        req.ShopState,
			Pincode:      req.ShopPincode,
			Phone:        req.ShopPhone,
			VehicleTypes: req.VehicleTypes,
		}
		if fieldErrs := validator.Validate(details); fieldErrs != nil {
			return nil, ErrShopDetailsInvalid
		}

		vehicleTypes := make([]domain.VehicleType, 0, len(req.VehicleTypes))
		for _, v := range req.VehicleTypes {
			vehicleTypes = append(vehicleTypes, domain.VehicleType(v))
		}

		shop := &domain.Shop{
			Name:         req.ShopName,
			Address:      req.ShopAddress,
			City:         req.ShopCity,
			State:        req.ShopState,
			Pincode:      req.ShopPincode,
			Phone:        req.ShopPhone,
			VehicleTypes: vehicleTypes,
			Status:       domain.ShopPending,
			IsActive:     true,
		}

		if err := s.users.CreateWithShop(ctx, user, shop); err != nil {
			return nil, err
		}
	} else {
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &RegisterResult{User: user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{
		User:  user,
		Shop:  s.shopSummary(ctx, user),
		Token: token,
	}, nil
}

// GetCurrentUser resolves the session user, with a shop summary for
// mechanics. Role claims in the token are never trusted beyond routing;
// this is the server-side source of truth per call.
func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, *ShopSummary, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	user.PasswordHash = ""
	return user, s.shopSummary(ctx, user), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) shopSummary(ctx context.Context, user *domain.User) *ShopSummary {
	if user.Role != domain.RoleMechanic {
		return nil
	}
	shop, err := s.shops.GetByOwnerID(ctx, user.ID)
	if err != nil {
		return nil
	}
	return &ShopSummary{ID: shop.ID, Status: string(shop.Status)}
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
