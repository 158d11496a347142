package serializers

import (
	"strings"
	"time"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/utils/format"
)

type CategoryDetail struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type VariationTypeDetail struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductImageView struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	IsActive bool   `json:"is_active"`
}

type ProductListView struct {
	ID                           string                      `json:"id"`
	Name                         string                      `json:"name"`
	Slug                         string                      `json:"slug"`
	Description                  string                      `json:"description"`
	ThumbnailImage               string                      `json:"thumbnail_image"`
	IsActive                     bool                        `json:"is_active"`
	CategoryDetails              []CategoryDetail            `json:"category_details"`
	EnabledVariationTypesDetails []VariationTypeDetail       `json:"enabled_variation_types_details"`
	DefaultVariation             any                         `json:"default_variation"`
	ReviewSummary                *repositories.ReviewSummary `json:"review_summary,omitempty"`
	CreatedAt                    time.Time                   `json:"created_at"`
	UpdatedAt                    time.Time                   `json:"updated_at"`
}

type ProductView struct {
	ProductListView
	Images     []ProductImageView `json:"images"`
	Variations []any              `json:"variations"`
}

// ProductAggregates feeds the admin list view. Each value comes from a
// single aggregate query, never from iterating rows in application code.
type ProductAggregates struct {
	TotalStock int
	TotalSold  int
	Variants   int64
	Prices     repositories.ProductPrices
}

type AdminProductListView struct {
	ProductListView
	TotalStock          int    `json:"total_stock"`
	TotalSold           int    `json:"total_sold"`
	HighestCostPrice    string `json:"highest_cost_price"`
	HighestSellingPrice string `json:"highest_selling_price"`
	EnabledVariations   string `json:"enabled_variations"`
	Variants            int64  `json:"variants"`
}

func CategoryDetails(categories []models.Category) []CategoryDetail {
	details := make([]CategoryDetail, 0, len(categories))
	for _, category := range categories {
		details = append(details, CategoryDetail{
			ID:   category.ID,
			Name: category.Name,
			Slug: category.Slug,
		})
	}
	return details
}

func VariationTypeDetails(types []models.VariationType) []VariationTypeDetail {
	details := make([]VariationTypeDetail, 0, len(types))
	for _, variationType := range types {
		details = append(details, VariationTypeDetail{
			ID:   variationType.ID,
			Name: variationType.Name,
		})
	}
	return details
}

// NewProductListView builds the storefront projection. reviewSummary is nil
// when the tenant does not have the review subsystem; the key is then
// omitted entirely.
func NewProductListView(product models.Product, reviewSummary *repositories.ReviewSummary, staff bool) ProductListView {
	view := ProductListView{
		ID:                           product.ID,
		Name:                         product.Name,
		Slug:                         product.Slug,
		Description:                  product.Description,
		ThumbnailImage:               product.ThumbnailImage,
		IsActive:                     product.IsActive,
		CategoryDetails:              CategoryDetails(product.Categories),
		EnabledVariationTypesDetails: VariationTypeDetails(product.EnabledVariationTypes),
		DefaultVariation:             struct{}{},
		ReviewSummary:                reviewSummary,
		CreatedAt:                    product.CreatedAt,
		UpdatedAt:                    product.UpdatedAt,
	}
	if product.DefaultVariant != nil {
		view.DefaultVariation = ProjectVariation(*product.DefaultVariant, staff)
	}
	return view
}

func NewProductView(product models.Product, reviewSummary *repositories.ReviewSummary, staff bool) ProductView {
	imageViews := make([]ProductImageView, 0, len(product.Images))
	for _, image := range product.Images {
		imageViews = append(imageViews, ProductImageView{
			ID:       image.ID,
			Image:    image.Image,
			IsActive: image.IsActive,
		})
	}
	variationViews := make([]any, 0, len(product.Variations))
	for _, variation := range product.Variations {
		if !variation.IsActive {
			continue
		}
		variationViews = append(variationViews, ProjectVariation(variation, staff))
	}
	return ProductView{
		ProductListView: NewProductListView(product, reviewSummary, staff),
		Images:          imageViews,
		Variations:      variationViews,
	}
}

// NewAdminProductListView adds the aggregate columns. A product without
// variations reports zero sums and "N/A" prices; it never faults.
func NewAdminProductListView(product models.Product, reviewSummary *repositories.ReviewSummary, aggregates ProductAggregates) AdminProductListView {
	names := make([]string, 0, len(product.EnabledVariationTypes))
	for _, variationType := range product.EnabledVariationTypes {
		names = append(names, variationType.Name)
	}

	highestCost := format.NoPrice
	highestSelling := format.NoPrice
	if aggregates.Prices.Found {
		highestCost = format.Rupees(aggregates.Prices.HighestCost)
		highestSelling = format.Rupees(aggregates.Prices.HighestSelling)
	}

	return AdminProductListView{
		ProductListView:     NewProductListView(product, reviewSummary, true),
		TotalStock:          aggregates.TotalStock,
		TotalSold:           aggregates.TotalSold,
		HighestCostPrice:    highestCost,
		HighestSellingPrice: highestSelling,
		EnabledVariations:   strings.Join(names, ", "),
		Variants:            aggregates.Variants,
	}
}
