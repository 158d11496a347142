package repositories

import (
	"context"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_GetCreatesDefaultRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, settings.UsdNprExchangeRate.Equal(decimal.NewFromFloat(135.00)))

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID, "the row is a singleton")

	var count int64
	db.Model(&models.Settings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingsRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)

	settings.UsdNprExchangeRate = decimal.NewFromFloat(140.50)
	require.NoError(t, repo.Update(ctx, settings))

	reloaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.UsdNprExchangeRate.Equal(decimal.NewFromFloat(140.50)))
}
