package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"mechbook/internal/domain"
	"mechbook/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SlotTaken(ctx context.Context, shopID int64, date time.Time, timeSlot string) (bool, error) {
	args := m.Called(ctx, shopID, date, timeSlot)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByShop(ctx context.Context, shopID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, shopID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Shop, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func visibleShop(id int64) *domain.Shop {
	return &domain.Shop{
		ID:       id,
		OwnerID:  id + 100,
		Name:     "Quick Fix Auto Service",
		City:     "Mumbai",
		Status:   domain.ShopApproved,
		IsActive: true,
	}
}

func activeService(id, shopID int64, price float64) *domain.Service {
	return &domain.Service{
		ID:       id,
		ShopID:   shopID,
		Name:     "Oil Change",
		Price:    price,
		Duration: 45,
		IsActive: true,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockServices := new(MockServiceRepository)
	mockShops := new(MockShopRepository)

	mockServices.On("GetByID", mock.Anything, int64(7)).Return(activeService(7, 3, 999), nil)
	mockShops.On("GetByID", mock.Anything, int64(3)).Return(visibleShop(3), nil)
	mockBookings.On("SlotTaken", mock.Anything, int64(3), mock.Anything, "10:00").Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockServices, mockShops)

	b, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		ShopID:    3,
		ServiceID: 7,
		Date:      "2026-09-15",
		TimeSlot:  "10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, 999.0, b.TotalPrice)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), b.Date)
}

func TestService_CreateBooking_BadDate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockServiceRepository), new(MockShopRepository))

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		ShopID:    3,
		ServiceID: 7,
		Date:      "15/09/2026",
		TimeSlot:  "10:00",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_ServiceFromAnotherShop(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockServices := new(MockServiceRepository)
	mockShops := new(MockShopRepository)

	// service 7 belongs to shop 8, not the requested shop 3
	mockServices.On("GetByID", mock.Anything, int64(7)).Return(activeService(7, 8, 500), nil)

	service := NewService(mockBookings, mockServices, mockShops)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		ShopID:    3,
		ServiceID: 7,
		Date:      "2026-09-15",
		TimeSlot:  "10:00",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_CreateBooking_ShopNotVisible(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockServices := new(MockServiceRepository)
	mockShops := new(MockShopRepository)

	pending := visibleShop(3)
	pending.Status = domain.ShopPending

	mockServices.On("GetByID", mock.Anything, int64(7)).Return(activeService(7, 3, 500), nil)
	mockShops.On("GetByID", mock.Anything, int64(3)).Return(pending, nil)

	service := NewService(mockBookings, mockServices, mockShops)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		ShopID:    3,
		ServiceID: 7,
		Date:      "2026-09-15",
		TimeSlot:  "10:00",
	})

	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestService_CreateBooking_SlotTaken(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockServices := new(MockServiceRepository)
	mockShops := new(MockShopRepository)

	mockServices.On("GetByID", mock.Anything, int64(7)).Return(activeService(7, 3, 500), nil)
	mockShops.On("GetByID", mock.Anything, int64(3)).Return(visibleShop(3), nil)
	mockBookings.On("SlotTaken", mock.Anything, int64(3), mock.Anything, "10:00").Return(true, nil)

	service := NewService(mockBookings, mockServices, mockShops)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		ShopID:    3,
		ServiceID: 7,
		Date:      "2026-09-15",
		TimeSlot:  "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

// The pre-check can miss a concurrent insert; the unique index catches it
// and the conflict must still come back as ErrSlotTaken.
func TestService_CreateBooking_RaceLostOnInsert(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockServices := new(MockServiceRepository)
	mockShops := new(MockShopRepository)

	mockServices.On("GetByID", mock.Anything, int64(7)).Return(activeService(7, 3, 500), nil)
	mockShops.On("GetByID", mock.Anything, int64(3)).Return(visibleShop(3), nil)
	mockBookings.On("SlotTaken", mock.Anything, int64(3), mock.Anything, "10:00").Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(repository.ErrSlotConflict)

	service := NewService(mockBookings, mockServices, mockShops)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		ShopID:    3,
		ServiceID: 7,
		Date:      "2026-09-15",
		TimeSlot:  "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestService_GetBooking_ForbiddenForStranger(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 42, ShopID: 3}, nil)

	service := NewService(mockBookings, new(MockServiceRepository), new(MockShopRepository))

	_, err := service.GetBooking(context.Background(), Actor{UserID: 77, Role: domain.RoleUser}, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	// admins can read anything
	b, err := service.GetBooking(context.Background(), Actor{UserID: 77, Role: domain.RoleAdmin}, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), b.UserID)
}

func TestService_UpdateStatus_UserCancelsOwnBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 42, ShopID: 3, Status: domain.BookingPending}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingCancelled).Return(nil)

	service := NewService(mockBookings, new(MockServiceRepository), new(MockShopRepository))

	b, err := service.UpdateStatus(context.Background(), Actor{UserID: 42, Role: domain.RoleUser}, 1, "CANCELLED")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_UpdateStatus_UserCannotConfirm(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 42, ShopID: 3, Status: domain.BookingPending}, nil)

	service := NewService(mockBookings, new(MockServiceRepository), new(MockShopRepository))

	_, err := service.UpdateStatus(context.Background(), Actor{UserID: 42, Role: domain.RoleUser}, 1, "CONFIRMED")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateStatus_MechanicForeignShop(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockShops := new(MockShopRepository)

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 42, ShopID: 3, Status: domain.BookingPending}, nil)
	mockShops.On("GetByOwnerID", mock.Anything, int64(55)).Return(visibleShop(9), nil)

	service := NewService(mockBookings, new(MockServiceRepository), mockShops)

	// booking belongs to shop 3, mechanic owns shop 9: not found, not forbidden
	_, err := service.UpdateStatus(context.Background(), Actor{UserID: 55, Role: domain.RoleMechanic}, 1, "CONFIRMED")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_UpdateStatus_MechanicConfirms(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockShops := new(MockShopRepository)

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 42, ShopID: 3, Status: domain.BookingPending}, nil)
	mockShops.On("GetByOwnerID", mock.Anything, int64(103)).Return(visibleShop(3), nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingConfirmed).Return(nil)

	service := NewService(mockBookings, new(MockServiceRepository), mockShops)

	b, err := service.UpdateStatus(context.Background(), Actor{UserID: 103, Role: domain.RoleMechanic}, 1, "CONFIRMED")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	mockBookings.AssertCalled(t, "UpdateStatus", mock.Anything, int64(1), domain.BookingConfirmed)
}

func TestService_UpdateStatus_TerminalIsImmutable(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, UserID: 42, ShopID: 3, Status: domain.BookingCompleted}, nil)

	service := NewService(mockBookings, new(MockServiceRepository), new(MockShopRepository))

	// even admins cannot move a booking out of a terminal state
	_, err := service.UpdateStatus(context.Background(), Actor{UserID: 1, Role: domain.RoleAdmin}, 1, "CANCELLED")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockServiceRepository), new(MockShopRepository))

	_, err := service.UpdateStatus(context.Background(), Actor{UserID: 1, Role: domain.RoleAdmin}, 1, "DONE")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListShopBookings_StatusFilter(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockShops := new(MockShopRepository)

	mockShops.On("GetByOwnerID", mock.Anything, int64(103)).Return(visibleShop(3), nil)
	mockBookings.On("ListByShop", mock.Anything, int64(3), domain.BookingPending).Return([]domain.Booking{{ID: 1}, {ID: 2}}, nil)

	service := NewService(mockBookings, new(MockServiceRepository), mockShops)

	bookings, err := service.ListShopBookings(context.Background(), 103, "PENDING")
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)

	_, err = service.ListShopBookings(context.Background(), 103, "BOGUS")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListShopBookings_NoShop(t *testing.T) {
	mockShops := new(MockShopRepository)
	mockShops.On("GetByOwnerID", mock.Anything, int64(103)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockBookingRepository), new(MockServiceRepository), mockShops)

	_, err := service.ListShopBookings(context.Background(), 103, "")
	assert.ErrorIs(t, err, ErrShopNotFound)
}
