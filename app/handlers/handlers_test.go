package handlers

import (
	"testing"

	"github.com/bepasal/bazar/app/models/migrations"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/services"
	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
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

func newProductHandler(db *gorm.DB) *ProductHandler {
	productRepo := repositories.NewProductRepository(db)
	variationRepo := repositories.NewVariationRepository(db)
	return NewProductHandler(
		productRepo,
		repositories.NewCategoryRepository(db),
		repositories.NewVariationTypeRepository(db),
		repositories.NewReviewRepository(db),
		services.NewCatalogService(productRepo, variationRepo),
		render.New(),
		validator.New(),
	)
}

func newVariationHandler(db *gorm.DB) *VariationHandler {
	productRepo := repositories.NewProductRepository(db)
	variationRepo := repositories.NewVariationRepository(db)
	return NewVariationHandler(
		variationRepo,
		productRepo,
		repositories.NewVariationTypeRepository(db),
		services.NewCatalogService(productRepo, variationRepo),
		services.NewSettingsService(repositories.NewSettingsRepository(db)),
		render.New(),
		validator.New(),
	)
}
