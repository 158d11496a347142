package fakers

import (
	"math/rand"
	"time"

	"github.com/bepasal/bazar/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func CategoryFaker(db *gorm.DB) *models.Category {
	name := faker.Word()

	return &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name + "-" + uuid.NewString()[:6]),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func VariationTypeFaker(db *gorm.DB, optionNames ...string) *models.VariationType {
	typeID := uuid.New().String()

	options := make([]models.VariationOption, 0, len(optionNames))
	for _, name := range optionNames {
		options = append(options, models.VariationOption{
			ID:              uuid.New().String(),
			Name:            name,
			VariationTypeID: typeID,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		})
	}

	return &models.VariationType{
		ID:        typeID,
		Name:      faker.Word(),
		Options:   options,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// ProductFaker builds a product with one variation per option of every
// enabled type. Selling price stays above cost price so the seeded catalog
// looks sane in admin listings.
func ProductFaker(db *gorm.DB, category *models.Category, types ...*models.VariationType) *models.Product {
	name := faker.Name()
	productID := uuid.New().String()

	enabledTypes := make([]models.VariationType, 0, len(types))
	variations := make([]models.ProductVariation, 0)
	for _, variationType := range types {
		enabledTypes = append(enabledTypes, *variationType)
		for _, option := range variationType.Options {
			cost := fakePrice()
			variations = append(variations, models.ProductVariation{
				ID:                         uuid.New().String(),
				ProductID:                  productID,
				Slug:                       slug.Make(name + "-" + option.Name + "-" + uuid.NewString()[:6]),
				CostPrice:                  decimal.NewFromFloat(cost),
				SellingPrice:               decimal.NewFromFloat(cost * 1.3),
				Stock:                      rand.Intn(20) + 1,
				IsActive:                   true,
				VariationOptionCombination: []models.VariationOption{option},
				CreatedAt:                  time.Now(),
				UpdatedAt:                  time.Now(),
			})
		}
	}

	imagePaths := []string{
		"/media/products/sample.jpg",
		"/media/products/sample1.jpg",
		"/media/products/sample2.jpg",
	}

	numImages := rand.Intn(3) + 1
	productImages := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		productImages[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			Image:     imagePaths[rand.Intn(len(imagePaths))],
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}

	return &models.Product{
		ID:                    productID,
		Name:                  name,
		Slug:                  slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:           faker.Paragraph(),
		ThumbnailImage:        imagePaths[0],
		IsActive:              true,
		Categories:            []models.Category{*category},
		EnabledVariationTypes: enabledTypes,
		Images:                productImages,
		Variations:            variations,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}
}

func OrderStatusFaker(name string, position int) *models.OrderStatus {
	return &models.OrderStatus{
		ID:        uuid.New().String(),
		Name:      name,
		Position:  position,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func OrderItemStatusFaker(name string, position int) *models.OrderItemStatus {
	return &models.OrderItemStatus{
		ID:        uuid.New().String(),
		Name:      name,
		Position:  position,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func fakePrice() float64 {
	return float64(rand.Intn(9900)+100) / 1.0
}
