package services

import (
	"context"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/models/migrations"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewOrderItemRepository(db),
		repositories.NewVariationRepository(db),
	)
}

func seedVariation(t *testing.T, db *gorm.DB, stock int) (*models.Product, *models.ProductVariation) {
	t.Helper()

	product := &models.Product{Name: "shirt", Slug: "shirt", IsActive: true}
	require.NoError(t, db.Create(product).Error)
	variation := &models.ProductVariation{
		ProductID:    product.ID,
		Slug:         "shirt-small",
		CostPrice:    decimal.NewFromInt(80),
		SellingPrice: decimal.NewFromInt(120),
		Stock:        stock,
		IsActive:     true,
	}
	require.NoError(t, db.Create(variation).Error)
	return product, variation
}

func TestOrderService_PlaceDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	service := newOrderService(db)
	ctx := context.Background()

	product, variation := seedVariation(t, db, 5)

	order, err := service.Place(ctx, serializers.OrderPayload{
		OrderItems: []serializers.OrderItemPayload{
			{Item: product.ID, Variation: variation.ID, Quantity: 3},
		},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEmpty(t, order.Code)
	assert.Nil(t, order.UserID, "guest orders carry no user")
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)

	var reloaded models.ProductVariation
	require.NoError(t, db.First(&reloaded, "id = ?", variation.ID).Error)
	assert.Equal(t, 2, reloaded.Stock)
}

func TestOrderService_PlaceInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	service := newOrderService(db)
	ctx := context.Background()

	product, plenty := seedVariation(t, db, 5)
	scarce := &models.ProductVariation{
		ProductID:    product.ID,
		Slug:         "shirt-large",
		CostPrice:    decimal.NewFromInt(90),
		SellingPrice: decimal.NewFromInt(150),
		Stock:        1,
		IsActive:     true,
	}
	require.NoError(t, db.Create(scarce).Error)

	_, err := service.Place(ctx, serializers.OrderPayload{
		OrderItems: []serializers.OrderItemPayload{
			{Item: product.ID, Variation: plenty.ID, Quantity: 2},
			{Item: product.ID, Variation: scarce.ID, Quantity: 2},
		},
	}, nil)
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

	var reloaded models.ProductVariation
	require.NoError(t, db.First(&reloaded, "id = ?", plenty.ID).Error)
	assert.Equal(t, 5, reloaded.Stock, "the earlier decrement is rolled back")

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
}

func TestOrderService_PlaceUnknownVariation(t *testing.T) {
	db := newTestDB(t)
	service := newOrderService(db)

	product, variation := seedVariation(t, db, 5)

	_, err := service.Place(context.Background(), serializers.OrderPayload{
		OrderItems: []serializers.OrderItemPayload{
			{Item: product.ID, Variation: "no-such-variation", Quantity: 1},
		},
	}, nil)
	assert.ErrorIs(t, err, ErrUnknownVariation)

	other := &models.Product{Name: "hat", Slug: "hat", IsActive: true}
	require.NoError(t, db.Create(other).Error)

	// A variation of a different product is just as unknown.
	_, err = service.Place(context.Background(), serializers.OrderPayload{
		OrderItems: []serializers.OrderItemPayload{
			{Item: other.ID, Variation: variation.ID, Quantity: 1},
		},
	}, nil)
	assert.ErrorIs(t, err, ErrUnknownVariation)
}

func TestOrderService_CancelItemRestoresStock(t *testing.T) {
	db := newTestDB(t)
	service := newOrderService(db)
	ctx := context.Background()

	product, variation := seedVariation(t, db, 5)

	order, err := service.Place(ctx, serializers.OrderPayload{
		OrderItems: []serializers.OrderItemPayload{
			{Item: product.ID, Variation: variation.ID, Quantity: 3},
		},
	}, nil)
	require.NoError(t, err)

	cancelled, err := service.CancelItem(ctx, order.Code, order.Items[0].ID)
	require.NoError(t, err)
	require.Len(t, cancelled.Items, 1)
	assert.True(t, cancelled.Items[0].IsCancelled)

	var reloaded models.ProductVariation
	require.NoError(t, db.First(&reloaded, "id = ?", variation.ID).Error)
	assert.Equal(t, 5, reloaded.Stock)

	_, err = service.CancelItem(ctx, order.Code, order.Items[0].ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestOrderService_CancelItemWrongOrder(t *testing.T) {
	db := newTestDB(t)
	service := newOrderService(db)
	ctx := context.Background()

	product, variation := seedVariation(t, db, 5)

	first, err := service.Place(ctx, serializers.OrderPayload{
		OrderItems: []serializers.OrderItemPayload{{Item: product.ID, Variation: variation.ID, Quantity: 1}},
	}, nil)
	require.NoError(t, err)
	second, err := service.Place(ctx, serializers.OrderPayload{
		OrderItems: []serializers.OrderItemPayload{{Item: product.ID, Variation: variation.ID, Quantity: 1}},
	}, nil)
	require.NoError(t, err)

	_, err = service.CancelItem(ctx, first.Code, second.Items[0].ID)
	assert.ErrorIs(t, err, ErrItemNotInOrder)

	missing, err := service.CancelItem(ctx, "no-such-order", first.Items[0].ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
