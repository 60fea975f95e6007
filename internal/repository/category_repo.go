package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"mechbook/internal/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex"`
	Description *string   `gorm:"column:description"`
	VehicleType string    `gorm:"column:vehicle_type"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (categoryModel) TableName() string { return "categories" }

func toDomainCategory(m categoryModel) *domain.Category {
	c := &domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		VehicleType: domain.VehicleType(m.VehicleType),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Description != nil {
		c.Description = *m.Description
	}
	return c
}

func toCategoryModel(c *domain.Category) categoryModel {
	m := categoryModel{
		ID:          c.ID,
		Name:        c.Name,
		VehicleType: string(c.VehicleType),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Description != "" {
		v := c.Description
		m.Description = &v
	}
	return m
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	m := toCategoryModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var m categoryModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCategory(m), nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&categoryModel{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	m := toCategoryModel(c)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&categoryModel{}, id).Error
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	return r.list(ctx, false)
}

// ListActive returns active categories ordered by name.
func (r *CategoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	return r.list(ctx, true)
}

func (r *CategoryRepository) list(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	q := r.db.WithContext(ctx).Model(&categoryModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var models []categoryModel
	if err := q.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCategory(m))
	}
	return out, nil
}
