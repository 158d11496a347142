package repositories

import (
	"context"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_Summary(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	product := createProduct(t, db, "shirt")
	require.NoError(t, repo.Create(ctx, &models.Review{ProductID: product.ID, Rating: 5, Comment: "great"}))
	require.NoError(t, repo.Create(ctx, &models.Review{ProductID: product.ID, Rating: 4}))

	summary, err := repo.Summary(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalReviews)
	assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
}

func TestReviewRepository_SummaryWithoutReviews(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	summary, err := repo.Summary(context.Background(), "no-such-product")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalReviews)
	assert.Zero(t, summary.AverageRating)
}
