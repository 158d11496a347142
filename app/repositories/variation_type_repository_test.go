package repositories

import (
	"context"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariationTypeRepository_DeleteProtectedWhileInUse(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariationTypeRepository(db)
	ctx := context.Background()

	sizeType := &models.VariationType{Name: "Size"}
	require.NoError(t, repo.Create(ctx, sizeType))
	option := &models.VariationOption{Name: "Small", VariationTypeID: sizeType.ID}
	require.NoError(t, repo.CreateOption(ctx, option))

	product := createProduct(t, db, "shirt")
	variation := createVariation(t, db, product.ID, "shirt-small", 80, 120, 5)
	require.NoError(t, db.Model(variation).Association("VariationOptionCombination").Append(option))

	assert.ErrorIs(t, repo.Delete(ctx, sizeType.ID), ErrVariationTypeInUse)

	require.NoError(t, db.Model(variation).Association("VariationOptionCombination").Clear())
	require.NoError(t, repo.Delete(ctx, sizeType.ID))

	var count int64
	db.Model(&models.VariationOption{}).Where("variation_type_id = ?", sizeType.ID).Count(&count)
	assert.Zero(t, count, "options are removed with their type")
}

func TestVariationTypeRepository_GetOptionsByTypeUnknownParent(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariationTypeRepository(db)

	options, err := repo.GetOptionsByType(context.Background(), "no-such-type")
	require.NoError(t, err)
	assert.Empty(t, options)
}
