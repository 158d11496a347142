package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariationHandler_CreateConvertsUsdPrices(t *testing.T) {
	db := newTestDB(t)
	h := newVariationHandler(db)

	product := &models.Product{Name: "Ebook", Slug: "ebook", IsActive: true}
	require.NoError(t, db.Create(product).Error)

	body := `{"slug":"ebook-digital","selling_price_usd":"10","cost_price_usd":"4","stock":5}`
	r := httptest.NewRequest(http.MethodPost, "/api/site/products/ebook/variations/", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"product_slug": "ebook"})
	w := httptest.NewRecorder()
	h.Create(w, r)
	require.Equal(t, http.StatusCreated, w.Code)

	// Stored in NPR at the default 135.00 rate.
	var variation models.ProductVariation
	require.NoError(t, db.First(&variation, "slug = ?", "ebook-digital").Error)
	assert.True(t, variation.SellingPrice.Equal(decimal.NewFromInt(1350)), variation.SellingPrice.String())
	assert.True(t, variation.CostPrice.Equal(decimal.NewFromInt(540)), variation.CostPrice.String())
}

func TestVariationHandler_CreateRequiresPriceInEitherCurrency(t *testing.T) {
	db := newTestDB(t)
	h := newVariationHandler(db)

	product := &models.Product{Name: "Ebook", Slug: "ebook", IsActive: true}
	require.NoError(t, db.Create(product).Error)

	r := httptest.NewRequest(http.MethodPost, "/api/site/products/ebook/variations/", strings.NewReader(`{"stock":1}`))
	r = mux.SetURLVars(r, map[string]string{"product_slug": "ebook"})
	w := httptest.NewRecorder()
	h.Create(w, r)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
