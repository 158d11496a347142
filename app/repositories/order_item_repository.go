package repositories

import (
	"context"
	"errors"

	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

type OrderItemRepositoryImpl interface {
	BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error
	GetByID(ctx context.Context, id string) (*models.OrderItem, error)
	MarkCancelled(ctx context.Context, tx *gorm.DB, id string) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepositoryImpl {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepository) GetByID(ctx context.Context, id string) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) MarkCancelled(ctx context.Context, tx *gorm.DB, id string) error {
	return tx.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("id = ?", id).
		Update("is_cancelled", true).Error
}
