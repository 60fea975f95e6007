package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mechbook/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ShopID      int64     `gorm:"column:shop_id;index"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	Duration    int       `gorm:"column:duration"`
	CategoryID  *int64    `gorm:"column:category_id"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	s := &domain.Service{
		ID:         m.ID,
		ShopID:     m.ShopID,
		Name:       m.Name,
		Price:      m.Price,
		Duration:   m.Duration,
		CategoryID: m.CategoryID,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Description != nil {
		s.Description = *m.Description
	}
	return s
}

func toServiceModel(s *domain.Service) serviceModel {
	m := serviceModel{
		ID:         s.ID,
		ShopID:     s.ShopID,
		Name:       s.Name,
		Price:      s.Price,
		Duration:   s.Duration,
		CategoryID: s.CategoryID,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.Description != "" {
		v := s.Description
		m.Description = &v
	}
	return m
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&serviceModel{}, id).Error
}

// ListByShop returns every service of the shop, newest first.
func (r *ServiceRepository) ListByShop(ctx context.Context, shopID int64) ([]domain.Service, error) {
	var models []serviceModel
	tx := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

// ListActiveByShop returns the shop's active services ordered by price.
func (r *ServiceRepository) ListActiveByShop(ctx context.Context, shopID int64) ([]domain.Service, error) {
	var models []serviceModel
	tx := r.db.WithContext(ctx).
		Where("shop_id = ? AND is_active = ?", shopID, true).
		Order("price ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

// ActiveByShopIDs returns the active services of all given shops in one
// query, ordered by price, for the search result summaries.
func (r *ServiceRepository) ActiveByShopIDs(ctx context.Context, shopIDs []int64) ([]domain.Service, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}

	var models []serviceModel
	tx := r.db.WithContext(ctx).
		Where("shop_id IN ? AND is_active = ?", shopIDs, true).
		Order("price ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}
