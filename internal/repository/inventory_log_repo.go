package repository

import (
	"context"

	"stockroom/internal/model"

	"gorm.io/gorm"
)

type InventoryLogRepository interface {
	Create(ctx context.Context, l *model.InventoryLog) error
	// ListByProduct returns a product's logs newest first. Timestamps are
	// fixed-width ISO-8601 strings, so ordering on the raw column is
	// chronological.
	ListByProduct(ctx context.Context, productID uint) ([]model.InventoryLog, error)
}

type inventoryLogRepo struct{ db *gorm.DB }

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) Create(ctx context.Context, l *model.InventoryLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *inventoryLogRepo) ListByProduct(ctx context.Context, productID uint) ([]model.InventoryLog, error) {
	var logs []model.InventoryLog
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("timestamp DESC").
		Find(&logs).Error
	return logs, err
}
