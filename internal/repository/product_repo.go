package repository

import (
	"context"
	"strings"

	"stockroom/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProductRepository interface {
	// List returns every product in storage order.
	List(ctx context.Context) ([]model.Product, error)
	// SearchByName matches the name case-insensitively as a substring.
	// An empty query matches all products.
	SearchByName(ctx context.Context, q string) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	// FindByNameCI matches a name case-insensitively and exactly, optionally
	// excluding one id (excludeID 0 = no exclusion). Used for uniqueness
	// checks before writes.
	FindByNameCI(ctx context.Context, name string, excludeID uint) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (r *productRepo) SearchByName(ctx context.Context, q string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByNameCI(ctx context.Context, name string, excludeID uint) (*model.Product, error) {
	q := r.db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	var p model.Product
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}
