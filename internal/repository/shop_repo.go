package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"mechbook/internal/domain"
)

// ShopFilters narrows the public shop search. Query matches shop name,
// description and active service names; City is a substring match;
// VehicleType is a membership check.
type ShopFilters struct {
	Query       string
	City        string
	VehicleType domain.VehicleType
}

type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

type shopModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	OwnerID         int64     `gorm:"column:owner_id;uniqueIndex"`
	Name            string    `gorm:"column:name"`
	Description     *string   `gorm:"column:description"`
	Address         string    `gorm:"column:address"`
	City            string    `gorm:"column:city"`
	State           string    `gorm:"column:state"`
	Pincode         string    `gorm:"column:pincode"`
	Phone           string    `gorm:"column:phone"`
	Email           *string   `gorm:"column:email"`
	VehicleTypes    string    `gorm:"column:vehicle_types"`
	Status          string    `gorm:"column:status"`
	RejectionReason *string   `gorm:"column:rejection_reason"`
	OpenTime        *string   `gorm:"column:open_time"`
	CloseTime       *string   `gorm:"column:close_time"`
	WorkingDays     *string   `gorm:"column:working_days"`
	IsActive        bool      `gorm:"column:is_active;default:true"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (shopModel) TableName() string { return "shops" }

func toDomainShop(m shopModel) *domain.Shop {
	s := &domain.Shop{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		Address:      m.Address,
		City:         m.City,
		State:        m.State,
		Pincode:      m.Pincode,
		Phone:        m.Phone,
		VehicleTypes: splitVehicleTypes(m.VehicleTypes),
		Status:       domain.ShopStatus(m.Status),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Description != nil {
		s.Description = *m.Description
	}
	if m.Email != nil {
		s.Email = *m.Email
	}
	if m.RejectionReason != nil {
		s.RejectionReason = *m.RejectionReason
	}
	if m.OpenTime != nil {
		s.OpenTime = *m.OpenTime
	}
	if m.CloseTime != nil {
		s.CloseTime = *m.CloseTime
	}
	if m.WorkingDays != nil && *m.WorkingDays != "" {
		s.WorkingDays = strings.Split(*m.WorkingDays, ",")
	}
	return s
}

func toShopModel(s *domain.Shop) shopModel {
	m := shopModel{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Pincode:      s.Pincode,
		Phone:        s.Phone,
		VehicleTypes: joinVehicleTypes(s.VehicleTypes),
		Status:       string(s.Status),
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.Description != "" {
		v := s.Description
		m.Description = &v
	}
	if s.Email != "" {
		v := s.Email
		m.Email = &v
	}
	if s.RejectionReason != "" {
		v := s.RejectionReason
		m.RejectionReason = &v
	}
	if s.OpenTime != "" {
		v := s.OpenTime
		m.OpenTime = &v
	}
	if s.CloseTime != "" {
		v := s.CloseTime
		m.CloseTime = &v
	}
	if len(s.WorkingDays) > 0 {
		v := strings.Join(s.WorkingDays, ",")
		m.WorkingDays = &v
	}
	return m
}

func splitVehicleTypes(v string) []domain.VehicleType {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]domain.VehicleType, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, domain.VehicleType(p))
		}
	}
	return out
}

func joinVehicleTypes(ts []domain.VehicleType) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ",")
}

func (r *ShopRepository) Create(ctx context.Context, s *domain.Shop) error {
	m := toShopModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainShop(m)
	return nil
}

func (r *ShopRepository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	var m shopModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainShop(m), nil
}

func (r *ShopRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Shop, error) {
	var m shopModel
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainShop(m), nil
}

func (r *ShopRepository) Update(ctx context.Context, s *domain.Shop) error {
	m := toShopModel(s)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainShop(m)
	return nil
}

// Search returns APPROVED, active shops matching the filters, newest first.
func (r *ShopRepository) Search(ctx context.Context, f ShopFilters) ([]domain.Shop, error) {
	q := r.db.WithContext(ctx).
		Model(&shopModel{}).
		Where("status = ? AND is_active = ?", domain.ShopApproved, true)

	if f.Query != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(f.Query)) + "%"
		q = q.Where(`
LOWER(name) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?
OR EXISTS (
  SELECT 1 FROM services
  WHERE services.shop_id = shops.id
    AND services.is_active = ?
    AND LOWER(services.name) LIKE ?
)`, like, like, true, like)
	}

	if f.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(f.City))+"%")
	}

	if f.VehicleType != "" {
		// Vehicle types are stored comma-joined; the two tokens are not
		// substrings of each other, so LIKE is an exact membership test.
		q = q.Where("vehicle_types LIKE ?", "%"+string(f.VehicleType)+"%")
	}

	var models []shopModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Shop, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainShop(m))
	}
	return out, nil
}

// ListByStatus returns shops filtered by status ("" means all), newest
// first, with owner summaries attached.
func (r *ShopRepository) ListByStatus(ctx context.Context, status domain.ShopStatus) ([]domain.Shop, error) {
	q := r.db.WithContext(ctx).Model(&shopModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var models []shopModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Shop, 0, len(models))
	for _, m := range models {
		s := toDomainShop(m)

		var um userModel
		if err := r.db.WithContext(ctx).First(&um, m.OwnerID).Error; err == nil {
			owner := toDomainUser(um)
			owner.PasswordHash = ""
			s.Owner = owner
		}

		out = append(out, *s)
	}
	return out, nil
}

func (r *ShopRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&shopModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *ShopRepository) CountByStatus(ctx context.Context, status domain.ShopStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&shopModel{}).Where("status = ?", status).Count(&cnt)
	return cnt, tx.Error
}
