package repositories

import (
	"context"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_DeleteProtectedByChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	parent := &models.Category{Name: "Clothing", Slug: "clothing"}
	require.NoError(t, repo.Create(ctx, parent))
	child := &models.Category{Name: "Shirts", Slug: "shirts", ParentCategoryID: &parent.ID}
	require.NoError(t, repo.Create(ctx, child))

	err := repo.Delete(ctx, parent.ID)
	assert.ErrorIs(t, err, ErrCategoryHasChildren)

	require.NoError(t, repo.Delete(ctx, child.ID))
	require.NoError(t, repo.Delete(ctx, parent.ID))
}

func TestCategoryRepository_ParentCycleRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	a := &models.Category{Name: "A", Slug: "a"}
	require.NoError(t, repo.Create(ctx, a))
	b := &models.Category{Name: "B", Slug: "b", ParentCategoryID: &a.ID}
	require.NoError(t, repo.Create(ctx, b))

	a.ParentCategoryID = &b.ID
	assert.ErrorIs(t, repo.Update(ctx, a), ErrCategoryCycle)

	a.ParentCategoryID = &a.ID
	assert.ErrorIs(t, repo.Update(ctx, a), ErrCategoryCycle)
}

func TestCategoryRepository_UnknownParentRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	missing := "no-such-category"
	category := &models.Category{Name: "Shoes", Slug: "shoes", ParentCategoryID: &missing}
	assert.ErrorIs(t, repo.Create(ctx, category), ErrUnknownParentCategory)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Zero(t, count)

	existing := &models.Category{Name: "Bags", Slug: "bags"}
	require.NoError(t, repo.Create(ctx, existing))
	existing.ParentCategoryID = &missing
	assert.ErrorIs(t, repo.Update(ctx, existing), ErrUnknownParentCategory)
}

func TestCategoryRepository_SlugExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &models.Category{Name: "Clothing", Slug: "clothing"}
	require.NoError(t, repo.Create(ctx, category))

	exists, err := repo.SlugExists(ctx, "clothing", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(ctx, "clothing", category.ID)
	require.NoError(t, err)
	assert.False(t, exists, "a row does not collide with its own slug")
}
