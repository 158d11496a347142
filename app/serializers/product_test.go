package serializers

import (
	"encoding/json"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() models.Product {
	return models.Product{
		ID:   "prod-1",
		Name: "Shirt",
		Slug: "shirt",
		Categories: []models.Category{
			{ID: "cat-1", Name: "Clothing", Slug: "clothing"},
		},
		EnabledVariationTypes: []models.VariationType{
			{ID: "type-1", Name: "Size"},
			{ID: "type-2", Name: "Colour"},
		},
		IsActive: true,
	}
}

func TestProductListView_NoDefaultVariant(t *testing.T) {
	payload, err := json.Marshal(NewProductListView(sampleProduct(), nil, false))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	// An unset default renders as an empty object, never null.
	assert.Equal(t, map[string]any{}, decoded["default_variation"])

	_, hasSummary := decoded["review_summary"]
	assert.False(t, hasSummary, "review_summary is omitted when the subsystem is off")
}

func TestProductListView_WithDefaultVariant(t *testing.T) {
	variation := sampleVariation()
	product := sampleProduct()
	product.DefaultVariantID = &variation.ID
	product.DefaultVariant = &variation

	view := NewProductListView(product, nil, false)
	defaultView, ok := view.DefaultVariation.(VariationView)
	require.True(t, ok)
	assert.Equal(t, "var-1", defaultView.ID)

	staffView := NewProductListView(product, nil, true)
	_, ok = staffView.DefaultVariation.(StaffVariationView)
	assert.True(t, ok)
}

func TestProductListView_ReviewSummary(t *testing.T) {
	summary := &repositories.ReviewSummary{TotalReviews: 3, AverageRating: 4.5}

	payload, err := json.Marshal(NewProductListView(sampleProduct(), summary, false))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	got, ok := decoded["review_summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), got["total_reviews"])
	assert.Equal(t, 4.5, got["average_rating"])
}

func TestProductView_SkipsInactiveVariations(t *testing.T) {
	active := sampleVariation()
	inactive := sampleVariation()
	inactive.ID = "var-2"
	inactive.IsActive = false

	product := sampleProduct()
	product.Variations = []models.ProductVariation{active, inactive}

	view := NewProductView(product, nil, false)
	require.Len(t, view.Variations, 1)
}

func TestProductView_EmptyCollectionsMarshalAsArrays(t *testing.T) {
	payload, err := json.Marshal(NewProductView(models.Product{ID: "p"}, nil, false))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, []any{}, decoded["variations"])
	assert.Equal(t, []any{}, decoded["images"])
	assert.Equal(t, []any{}, decoded["category_details"])
}

func TestAdminProductListView_Aggregates(t *testing.T) {
	aggregates := ProductAggregates{
		TotalStock: 7,
		TotalSold:  3,
		Variants:   2,
		Prices: repositories.ProductPrices{
			Found:          true,
			HighestCost:    decimal.NewFromInt(80),
			HighestSelling: decimal.NewFromInt(120),
		},
	}

	view := NewAdminProductListView(sampleProduct(), nil, aggregates)
	assert.Equal(t, 7, view.TotalStock)
	assert.Equal(t, 3, view.TotalSold)
	assert.Equal(t, int64(2), view.Variants)
	assert.Equal(t, "Rs. 80/-", view.HighestCostPrice)
	assert.Equal(t, "Rs. 120/-", view.HighestSellingPrice)
	assert.Equal(t, "Size, Colour", view.EnabledVariations)
}

func TestAdminProductListView_NoVariations(t *testing.T) {
	view := NewAdminProductListView(sampleProduct(), nil, ProductAggregates{})
	assert.Equal(t, 0, view.TotalStock)
	assert.Equal(t, 0, view.TotalSold)
	assert.Equal(t, "N/A", view.HighestCostPrice)
	assert.Equal(t, "N/A", view.HighestSellingPrice)
}
