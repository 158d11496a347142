package repositories

import (
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/models/migrations"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
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

func createProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()

	product := &models.Product{Name: name, Slug: name, IsActive: true}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createVariation(t *testing.T, db *gorm.DB, productID, slug string, cost, selling int64, stock int) *models.ProductVariation {
	t.Helper()

	variation := &models.ProductVariation{
		ProductID:    productID,
		Slug:         slug,
		CostPrice:    decimal.NewFromInt(cost),
		SellingPrice: decimal.NewFromInt(selling),
		Stock:        stock,
		IsActive:     true,
	}
	require.NoError(t, db.Create(variation).Error)
	return variation
}
