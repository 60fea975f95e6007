package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"mechbook/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;index"`
	ShopID      int64     `gorm:"column:shop_id;index"`
	ServiceID   int64     `gorm:"column:service_id"`
	Date        time.Time `gorm:"column:date"`
	TimeSlot    string    `gorm:"column:time_slot"`
	Status      string    `gorm:"column:status"`
	TotalPrice  float64   `gorm:"column:total_price"`
	VehicleInfo *string   `gorm:"column:vehicle_info"`
	Notes       *string   `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:         m.ID,
		UserID:     m.UserID,
		ShopID:     m.ShopID,
		ServiceID:  m.ServiceID,
		Date:       m.Date,
		TimeSlot:   m.TimeSlot,
		Status:     domain.BookingStatus(m.Status),
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.VehicleInfo != nil {
		b.VehicleInfo = *m.VehicleInfo
	}
	if m.Notes != nil {
		b.Notes = *m.Notes
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:         b.ID,
		UserID:     b.UserID,
		ShopID:     b.ShopID,
		ServiceID:  b.ServiceID,
		Date:       b.Date,
		TimeSlot:   b.TimeSlot,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if b.VehicleInfo != "" {
		v := b.VehicleInfo
		m.VehicleInfo = &v
	}
	if b.Notes != "" {
		v := b.Notes
		m.Notes = &v
	}
	return m
}

// ErrSlotConflict is returned by Create when the idx_active_slot unique
// index rejects a second active booking for the same (shop, date, slot).
var ErrSlotConflict = errors.New("slot already booked")

// Create inserts the booking. A unique violation on the active-slot index
// is translated to ErrSlotConflict so callers need not know the driver.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrSlotConflict
		}
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// modernc sqlite surfaces constraint errors by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed: UNIQUE")
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// SlotTaken reports whether a non-cancelled booking already occupies the
// given shop/date/slot. The unique index remains the authority under
// concurrency; this pre-check just yields friendlier errors.
func (r *BookingRepository) SlotTaken(ctx context.Context, shopID int64, date time.Time, timeSlot string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("shop_id = ? AND date = ? AND time_slot = ? AND status <> ?",
			shopID, date, timeSlot, domain.BookingCancelled).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// ListByUser returns the user's bookings, most recent date first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.attachRelations(ctx, models)
}

// ListByShop returns the shop's bookings, optionally filtered by status,
// most recent date first.
func (r *BookingRepository) ListByShop(ctx context.Context, shopID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Where("shop_id = ?", shopID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var models []bookingModel
	if err := q.Order("date DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.attachRelations(ctx, models)
}

// attachRelations fills shop, service and user summaries for booking lists.
func (r *BookingRepository) attachRelations(ctx context.Context, models []bookingModel) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		b := toDomainBooking(m)

		var sm shopModel
		if err := r.db.WithContext(ctx).First(&sm, m.ShopID).Error; err == nil {
			b.Shop = toDomainShop(sm)
		}
		var svc serviceModel
		if err := r.db.WithContext(ctx).First(&svc, m.ServiceID).Error; err == nil {
			b.Service = toDomainService(svc)
		}
		var um userModel
		if err := r.db.WithContext(ctx).First(&um, m.UserID).Error; err == nil {
			u := toDomainUser(um)
			u.PasswordHash = ""
			b.User = u
		}

		out = append(out, *b)
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&cnt)
	return cnt, tx.Error
}
