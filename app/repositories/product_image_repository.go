package repositories

import (
	"context"

	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

type ProductImageRepositoryImpl interface {
	Create(ctx context.Context, image *models.ProductImage) error
	Delete(ctx context.Context, id string) error
	GetByProductSlug(ctx context.Context, productSlug string) ([]models.ProductImage, error)

	CreateVariationImage(ctx context.Context, image *models.ProductVariationImage) error
	GetByVariationSlug(ctx context.Context, variationSlug string) ([]models.ProductVariationImage, error)
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepositoryImpl {
	return &productImageRepository{db}
}

func (r *productImageRepository) Create(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ProductImage{}, "id = ?", id).Error
}

func (r *productImageRepository) GetByProductSlug(ctx context.Context, productSlug string) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.WithContext(ctx).
		Joins("JOIN products p ON p.id = product_images.product_id").
		Where("p.slug = ?", productSlug).
		Order("product_images.created_at DESC").
		Find(&images).Error
	return images, err
}

func (r *productImageRepository) CreateVariationImage(ctx context.Context, image *models.ProductVariationImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepository) GetByVariationSlug(ctx context.Context, variationSlug string) ([]models.ProductVariationImage, error) {
	var images []models.ProductVariationImage
	err := r.db.WithContext(ctx).
		Joins("JOIN product_variations pv ON pv.id = product_variation_images.product_variation_id").
		Where("pv.slug = ?", variationSlug).
		Order("product_variation_images.created_at DESC").
		Find(&images).Error
	return images, err
}
