package services

import (
	"context"
	"errors"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"gorm.io/gorm"
)

var (
	ErrUnknownVariation = errors.New("order item references an unknown variation")
	ErrItemNotInOrder   = errors.New("order item does not belong to this order")
	ErrAlreadyCancelled = errors.New("order item is already cancelled")
)

// OrderService owns the write side of order fulfillment. Stock leaves a
// variation through an atomic conditional decrement inside the placement
// transaction and returns on cancellation.
type OrderService struct {
	orders     repositories.OrderRepositoryImpl
	orderItems repositories.OrderItemRepositoryImpl
	variations repositories.VariationRepositoryImpl
}

func NewOrderService(
	orders repositories.OrderRepositoryImpl,
	orderItems repositories.OrderItemRepositoryImpl,
	variations repositories.VariationRepositoryImpl,
) *OrderService {
	return &OrderService{orders: orders, orderItems: orderItems, variations: variations}
}

// Place validates every item, decrements stock and writes the order plus
// items in one transaction. Nothing is persisted when any item fails.
func (s *OrderService) Place(ctx context.Context, payload serializers.OrderPayload, userID *string) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(payload.OrderItems))
	for _, itemPayload := range payload.OrderItems {
		variation, err := s.variations.GetByID(ctx, itemPayload.Variation)
		if err != nil {
			return nil, err
		}
		if variation == nil || variation.ProductID != itemPayload.Item {
			return nil, ErrUnknownVariation
		}
		items = append(items, models.OrderItem{
			ProductID:   itemPayload.Item,
			VariationID: itemPayload.Variation,
			Quantity:    itemPayload.Quantity,
		})
	}

	order := models.Order{UserID: userID, StatusID: payload.Status}
	err := s.orders.Transaction(ctx, func(tx *gorm.DB) error {
		for _, item := range items {
			if err := s.variations.DecrementStock(ctx, tx, item.VariationID, item.Quantity); err != nil {
				return err
			}
		}
		if err := s.orders.Create(ctx, tx, &order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		return s.orderItems.BulkCreate(ctx, tx, items)
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetByCode(ctx, order.Code)
}

// CancelItem marks the item cancelled and restores its quantity to the
// variation's stock in the same transaction.
func (s *OrderService) CancelItem(ctx context.Context, orderCode, itemID string) (*models.Order, error) {
	order, err := s.orders.GetByCode(ctx, orderCode)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	item, err := s.orderItems.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrderID != order.ID {
		return nil, ErrItemNotInOrder
	}
	if item.IsCancelled {
		return nil, ErrAlreadyCancelled
	}

	err = s.orders.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.orderItems.MarkCancelled(ctx, tx, item.ID); err != nil {
			return err
		}
		return s.variations.RestoreStock(ctx, tx, item.VariationID, item.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetByCode(ctx, orderCode)
}
