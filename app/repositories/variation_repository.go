package repositories

import (
	"context"
	"errors"

	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("not enough stock for variation")

type VariationRepositoryImpl interface {
	Create(ctx context.Context, variation *models.ProductVariation) error
	Update(ctx context.Context, variation *models.ProductVariation) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.ProductVariation, error)
	GetBySlug(ctx context.Context, slug string) (*models.ProductVariation, error)
	GetByProductSlug(ctx context.Context, productSlug string) ([]models.ProductVariation, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	ActiveCombinations(ctx context.Context, productID, excludeID string) (map[string][]string, error)
	ReplaceOptionCombination(ctx context.Context, variation *models.ProductVariation, options []models.VariationOption) error
	TotalSold(ctx context.Context, variationID string) (int, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, variationID string, quantity int) error
	RestoreStock(ctx context.Context, tx *gorm.DB, variationID string, quantity int) error
}

type variationRepository struct {
	db *gorm.DB
}

func NewVariationRepository(db *gorm.DB) VariationRepositoryImpl {
	return &variationRepository{db}
}

func (r *variationRepository) Create(ctx context.Context, variation *models.ProductVariation) error {
	return r.db.WithContext(ctx).Create(variation).Error
}

func (r *variationRepository) Update(ctx context.Context, variation *models.ProductVariation) error {
	return r.db.WithContext(ctx).Save(variation).Error
}

func (r *variationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductVariationImage{}, "product_variation_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProductVariation{}, "id = ?", id).Error
	})
}

func (r *variationRepository) GetByID(ctx context.Context, id string) (*models.ProductVariation, error) {
	var variation models.ProductVariation
	err := r.db.WithContext(ctx).
		Preload("Images", "is_active = ?", true).
		Preload("VariationOptionCombination").
		Preload("VariationOptionCombination.VariationType").
		Where("id = ?", id).
		First(&variation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variation, nil
}

func (r *variationRepository) GetBySlug(ctx context.Context, slug string) (*models.ProductVariation, error) {
	var variation models.ProductVariation
	err := r.db.WithContext(ctx).
		Preload("Images", "is_active = ?", true).
		Preload("VariationOptionCombination").
		Preload("VariationOptionCombination.VariationType").
		Where("slug = ?", slug).
		First(&variation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variation, nil
}

// GetByProductSlug yields an empty slice when the parent slug does not
// resolve; nested listings never 404 on an unknown parent.
func (r *variationRepository) GetByProductSlug(ctx context.Context, productSlug string) ([]models.ProductVariation, error) {
	var variations []models.ProductVariation
	err := r.db.WithContext(ctx).
		Joins("JOIN products p ON p.id = product_variations.product_id").
		Where("p.slug = ?", productSlug).
		Preload("Images", "is_active = ?", true).
		Preload("VariationOptionCombination").
		Preload("VariationOptionCombination.VariationType").
		Order("product_variations.created_at DESC").
		Find(&variations).Error
	return variations, err
}

func (r *variationRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.ProductVariation{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// ActiveCombinations maps each active variation of a product to its sorted
// option id set, for the uniqueness check performed at write time.
func (r *variationRepository) ActiveCombinations(ctx context.Context, productID, excludeID string) (map[string][]string, error) {
	var variations []models.ProductVariation
	q := r.db.WithContext(ctx).
		Preload("VariationOptionCombination").
		Where("product_id = ? AND is_active = ?", productID, true)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&variations).Error; err != nil {
		return nil, err
	}
	combinations := make(map[string][]string, len(variations))
	for _, variation := range variations {
		optionIDs := make([]string, 0, len(variation.VariationOptionCombination))
		for _, option := range variation.VariationOptionCombination {
			optionIDs = append(optionIDs, option.ID)
		}
		combinations[variation.ID] = optionIDs
	}
	return combinations, nil
}

func (r *variationRepository) ReplaceOptionCombination(ctx context.Context, variation *models.ProductVariation, options []models.VariationOption) error {
	return r.db.WithContext(ctx).Model(variation).Association("VariationOptionCombination").Replace(options)
}

// TotalSold sums non-cancelled order item quantities in one query.
func (r *variationRepository) TotalSold(ctx context.Context, variationID string) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("variation_id = ? AND is_cancelled = ?", variationID, false).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

// DecrementStock performs an atomic conditional decrement so concurrent
// orders cannot oversell the variation.
func (r *variationRepository) DecrementStock(ctx context.Context, tx *gorm.DB, variationID string, quantity int) error {
	result := tx.WithContext(ctx).
		Model(&models.ProductVariation{}).
		Where("id = ? AND stock >= ?", variationID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *variationRepository) RestoreStock(ctx context.Context, tx *gorm.DB, variationID string, quantity int) error {
	return tx.WithContext(ctx).
		Model(&models.ProductVariation{}).
		Where("id = ?", variationID).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity)).Error
}
