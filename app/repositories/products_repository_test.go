package repositories

import (
	"context"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Aggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createProduct(t, db, "shirt")
	first := createVariation(t, db, product.ID, "shirt-small", 80, 120, 5)
	second := createVariation(t, db, product.ID, "shirt-large", 90, 150, 2)

	order := &models.Order{}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID: order.ID, ProductID: product.ID, VariationID: first.ID, Quantity: 3,
	}).Error)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID: order.ID, ProductID: product.ID, VariationID: second.ID, Quantity: 1, IsCancelled: true,
	}).Error)

	stock, err := repo.TotalStock(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stock)

	sold, err := repo.TotalSold(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, sold, "cancelled items do not count as sold")

	variants, err := repo.VariantCount(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), variants)

	prices, err := repo.HighestPrices(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, prices.Found)
	assert.True(t, prices.HighestCost.Equal(second.CostPrice), "got %s", prices.HighestCost)
	assert.True(t, prices.HighestSelling.Equal(second.SellingPrice), "got %s", prices.HighestSelling)
}

func TestProductRepository_AggregatesWithoutVariations(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createProduct(t, db, "bare")

	stock, err := repo.TotalStock(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)

	sold, err := repo.TotalSold(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, sold)

	prices, err := repo.HighestPrices(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, prices.Found)
}

func TestProductRepository_GetBySlugNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	product, err := repo.GetBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createProduct(t, db, "doomed")
	variation := createVariation(t, db, product.ID, "doomed-one", 10, 20, 1)
	require.NoError(t, db.Create(&models.ProductVariationImage{
		ProductVariationID: variation.ID, Image: "/media/x.jpg",
	}).Error)
	require.NoError(t, db.Create(&models.ProductImage{
		ProductID: product.ID, Image: "/media/y.jpg",
	}).Error)

	require.NoError(t, repo.Delete(ctx, product.ID))

	var count int64
	db.Model(&models.ProductVariation{}).Where("product_id = ?", product.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.ProductVariationImage{}).Where("product_variation_id = ?", variation.ID).Count(&count)
	assert.Zero(t, count)
}

func TestProductRepository_SearchPaginated(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	createProduct(t, db, "Blue Shirt")
	createProduct(t, db, "Red Shirt")
	createProduct(t, db, "Green Hat")

	products, total, err := repo.SearchPaginated(ctx, "shirt", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)

	products, total, err = repo.SearchPaginated(ctx, "shirt", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 1)
}
