package services

import (
	"context"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(
		repositories.NewProductRepository(db),
		repositories.NewVariationRepository(db),
	)
}

func TestCatalogService_ValidateCombination(t *testing.T) {
	db := newTestDB(t)
	service := newCatalogService(db)
	ctx := context.Background()

	sizeType := &models.VariationType{Name: "Size"}
	require.NoError(t, db.Create(sizeType).Error)
	small := &models.VariationOption{Name: "Small", VariationTypeID: sizeType.ID}
	large := &models.VariationOption{Name: "Large", VariationTypeID: sizeType.ID}
	require.NoError(t, db.Create(small).Error)
	require.NoError(t, db.Create(large).Error)

	product, existing := seedVariation(t, db, 5)
	require.NoError(t, db.Model(existing).Association("VariationOptionCombination").Append(small))

	err := service.ValidateCombination(ctx, product.ID, "", []models.VariationOption{*small})
	assert.ErrorIs(t, err, ErrDuplicateCombination)

	err = service.ValidateCombination(ctx, product.ID, "", []models.VariationOption{*large})
	assert.NoError(t, err)

	// Editing the existing variation may keep its own combination.
	err = service.ValidateCombination(ctx, product.ID, existing.ID, []models.VariationOption{*small})
	assert.NoError(t, err)
}

func TestCatalogService_ValidateCombinationTypeConflict(t *testing.T) {
	db := newTestDB(t)
	service := newCatalogService(db)

	options := []models.VariationOption{
		{ID: "opt-1", VariationTypeID: "type-1"},
		{ID: "opt-2", VariationTypeID: "type-1"},
	}
	err := service.ValidateCombination(context.Background(), "prod-1", "", options)
	assert.ErrorIs(t, err, ErrOptionTypeConflict)
}

func TestCatalogService_ValidateDefaultVariant(t *testing.T) {
	db := newTestDB(t)
	service := newCatalogService(db)
	ctx := context.Background()

	product, variation := seedVariation(t, db, 5)

	assert.NoError(t, service.ValidateDefaultVariant(ctx, product.ID, variation.ID))
	assert.ErrorIs(t, service.ValidateDefaultVariant(ctx, "other-product", variation.ID), ErrForeignVariant)
	assert.ErrorIs(t, service.ValidateDefaultVariant(ctx, product.ID, "no-such-variant"), ErrForeignVariant)
}
