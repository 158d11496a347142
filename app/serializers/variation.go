package serializers

import (
	"time"

	"github.com/bepasal/bazar/app/models"
	"github.com/shopspring/decimal"
)

type VariationOptionView struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	VariationType     string `json:"variation_type"`
	VariationTypeName string `json:"variation_type_name"`
}

type VariationImageView struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	IsActive bool   `json:"is_active"`
}

// VariationView is the customer projection. It has no cost_price and no
// digital_file field at all, so a non-staff payload can never leak them.
type VariationView struct {
	ID                               string                `json:"id"`
	Product                          string                `json:"product"`
	Slug                             string                `json:"slug"`
	SellingPrice                     decimal.Decimal       `json:"selling_price"`
	Stock                            int                   `json:"stock"`
	IsActive                         bool                  `json:"is_active"`
	VariationOptionCombinationDetail []VariationOptionView `json:"variation_option_combination_detail"`
	Images                           []VariationImageView  `json:"images"`
	CreatedAt                        time.Time             `json:"created_at"`
	UpdatedAt                        time.Time             `json:"updated_at"`
}

// StaffVariationView adds the staff-only columns on top of the customer
// projection.
type StaffVariationView struct {
	VariationView
	CostPrice   decimal.Decimal `json:"cost_price"`
	DigitalFile string          `json:"digital_file"`
}

func NewVariationOptionView(option models.VariationOption) VariationOptionView {
	return VariationOptionView{
		ID:                option.ID,
		Name:              option.Name,
		VariationType:     option.VariationTypeID,
		VariationTypeName: option.VariationType.Name,
	}
}

func NewVariationView(variation models.ProductVariation) VariationView {
	optionViews := make([]VariationOptionView, 0, len(variation.VariationOptionCombination))
	for _, option := range variation.VariationOptionCombination {
		optionViews = append(optionViews, NewVariationOptionView(option))
	}
	imageViews := make([]VariationImageView, 0, len(variation.Images))
	for _, image := range variation.Images {
		imageViews = append(imageViews, VariationImageView{
			ID:       image.ID,
			Image:    image.Image,
			IsActive: image.IsActive,
		})
	}
	return VariationView{
		ID:                               variation.ID,
		Product:                          variation.ProductID,
		Slug:                             variation.Slug,
		SellingPrice:                     variation.SellingPrice,
		Stock:                            variation.Stock,
		IsActive:                         variation.IsActive,
		VariationOptionCombinationDetail: optionViews,
		Images:                           imageViews,
		CreatedAt:                        variation.CreatedAt,
		UpdatedAt:                        variation.UpdatedAt,
	}
}

func NewStaffVariationView(variation models.ProductVariation) StaffVariationView {
	return StaffVariationView{
		VariationView: NewVariationView(variation),
		CostPrice:     variation.CostPrice,
		DigitalFile:   variation.DigitalFile,
	}
}

// ProjectVariation picks the view matching the caller's role.
func ProjectVariation(variation models.ProductVariation, staff bool) any {
	if staff {
		return NewStaffVariationView(variation)
	}
	return NewVariationView(variation)
}
