package repositories

import (
	"context"
	"errors"

	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

type OrderRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	GetByCode(ctx context.Context, code string) (*models.Order, error)
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Order, int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error

	CreateStatus(ctx context.Context, status *models.OrderStatus) error
	GetStatuses(ctx context.Context) ([]models.OrderStatus, error)
	CreateItemStatus(ctx context.Context, status *models.OrderItemStatus) error
	GetItemStatuses(ctx context.Context) ([]models.OrderItemStatus, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (r *orderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByCode(ctx context.Context, code string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Items").
		Preload("Items.Status").
		Preload("Items.Product").
		Preload("Items.Product.Categories").
		Preload("Items.Product.EnabledVariationTypes").
		Preload("Items.Variation").
		Preload("Items.Variation.Images", "is_active = ?", true).
		Preload("Items.Variation.VariationOptionCombination").
		Preload("Items.Variation.VariationOptionCombination.VariationType").
		Where("code = ?", code).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Items").
		Preload("Items.Status").
		Preload("Items.Product").
		Preload("Items.Variation").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *orderRepository) CreateStatus(ctx context.Context, status *models.OrderStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *orderRepository) GetStatuses(ctx context.Context) ([]models.OrderStatus, error) {
	var statuses []models.OrderStatus
	err := r.db.WithContext(ctx).Order("position ASC").Find(&statuses).Error
	return statuses, err
}

func (r *orderRepository) CreateItemStatus(ctx context.Context, status *models.OrderItemStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *orderRepository) GetItemStatuses(ctx context.Context) ([]models.OrderItemStatus, error) {
	var statuses []models.OrderItemStatus
	err := r.db.WithContext(ctx).Order("position ASC").Find(&statuses).Error
	return statuses, err
}
