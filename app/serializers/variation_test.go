package serializers

import (
	"encoding/json"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVariation() models.ProductVariation {
	return models.ProductVariation{
		ID:           "var-1",
		ProductID:    "prod-1",
		Slug:         "blue-shirt-small",
		CostPrice:    decimal.NewFromInt(80),
		SellingPrice: decimal.NewFromInt(120),
		Stock:        5,
		DigitalFile:  "/media/files/manual.pdf",
		IsActive:     true,
		VariationOptionCombination: []models.VariationOption{
			{
				ID:              "opt-1",
				Name:            "Small",
				VariationTypeID: "type-1",
				VariationType:   models.VariationType{ID: "type-1", Name: "Size"},
			},
		},
	}
}

func TestVariationView_OmitsInternalFields(t *testing.T) {
	payload, err := json.Marshal(NewVariationView(sampleVariation()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	_, hasCost := decoded["cost_price"]
	_, hasFile := decoded["digital_file"]
	assert.False(t, hasCost, "cost_price must be absent, not null")
	assert.False(t, hasFile, "digital_file must be absent, not null")

	assert.Equal(t, "var-1", decoded["id"])
	assert.Equal(t, "120", decoded["selling_price"])
}

func TestStaffVariationView_IncludesInternalFields(t *testing.T) {
	payload, err := json.Marshal(NewStaffVariationView(sampleVariation()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "80", decoded["cost_price"])
	assert.Equal(t, "/media/files/manual.pdf", decoded["digital_file"])
}

func TestProjectVariation(t *testing.T) {
	variation := sampleVariation()

	_, isStaff := ProjectVariation(variation, true).(StaffVariationView)
	assert.True(t, isStaff)

	_, isCustomer := ProjectVariation(variation, false).(VariationView)
	assert.True(t, isCustomer)
}

func TestVariationView_OptionDetail(t *testing.T) {
	view := NewVariationView(sampleVariation())

	require.Len(t, view.VariationOptionCombinationDetail, 1)
	option := view.VariationOptionCombinationDetail[0]
	assert.Equal(t, "opt-1", option.ID)
	assert.Equal(t, "Small", option.Name)
	assert.Equal(t, "type-1", option.VariationType)
	assert.Equal(t, "Size", option.VariationTypeName)
}

func TestModelMarshal_NeverLeaksRedactedColumns(t *testing.T) {
	payload, err := json.Marshal(sampleVariation())
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "cost_price")
	assert.NotContains(t, string(payload), "digital_file")
}
