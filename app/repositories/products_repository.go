package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/bepasal/bazar/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductPrices carries the MAX() aggregates of one product's variations.
// Found is false when the product has no variations at all.
type ProductPrices struct {
	Found          bool
	HighestCost    decimal.Decimal
	HighestSelling decimal.Decimal
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	ReplaceCategories(ctx context.Context, product *models.Product, categories []models.Category) error
	ReplaceEnabledVariationTypes(ctx context.Context, product *models.Product, types []models.VariationType) error
	TotalStock(ctx context.Context, productID string) (int, error)
	TotalSold(ctx context.Context, productID string) (int, error)
	VariantCount(ctx context.Context, productID string) (int64, error)
	HighestPrices(ctx context.Context, productID string) (ProductPrices, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var variationIDs []string
		if err := tx.Model(&models.ProductVariation{}).
			Where("product_id = ?", id).
			Pluck("id", &variationIDs).Error; err != nil {
			return err
		}
		if len(variationIDs) > 0 {
			if err := tx.Delete(&models.ProductVariationImage{}, "product_variation_id IN ?", variationIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.ProductVariation{}, "id IN ?", variationIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.ProductImage{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Categories").
		Preload("EnabledVariationTypes").
		Preload("Images", "is_active = ?", true).
		Preload("Variations", "is_active = ?", true).
		Preload("Variations.Images", "is_active = ?", true).
		Preload("Variations.VariationOptionCombination").
		Preload("Variations.VariationOptionCombination.VariationType").
		Preload("DefaultVariant").
		Preload("DefaultVariant.Images", "is_active = ?", true).
		Preload("DefaultVariant.VariationOptionCombination").
		Preload("DefaultVariant.VariationOptionCombination.VariationType").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Categories").
		Preload("EnabledVariationTypes").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Categories").
		Preload("EnabledVariationTypes").
		Preload("DefaultVariant").
		Preload("DefaultVariant.Images", "is_active = ?", true).
		Preload("DefaultVariant.VariationOptionCombination").
		Preload("DefaultVariant.VariationOptionCombination.VariationType").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("LOWER(name) LIKE ?", searchKeyword).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Categories").
		Preload("EnabledVariationTypes").
		Preload("DefaultVariant").
		Where("LOWER(name) LIKE ?", searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	q := p.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (p *productRepository) ReplaceCategories(ctx context.Context, product *models.Product, categories []models.Category) error {
	return p.db.WithContext(ctx).Model(product).Association("Categories").Replace(categories)
}

func (p *productRepository) ReplaceEnabledVariationTypes(ctx context.Context, product *models.Product, types []models.VariationType) error {
	return p.db.WithContext(ctx).Model(product).Association("EnabledVariationTypes").Replace(types)
}

// TotalStock sums the stock of every variation in one query.
func (p *productRepository) TotalStock(ctx context.Context, productID string) (int, error) {
	var total int
	err := p.db.WithContext(ctx).
		Model(&models.ProductVariation{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(stock), 0)").
		Scan(&total).Error
	return total, err
}

// TotalSold sums non-cancelled order item quantities across every variation
// of the product in one query.
func (p *productRepository) TotalSold(ctx context.Context, productID string) (int, error) {
	var total int
	err := p.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN product_variations pv ON pv.id = order_items.variation_id").
		Where("pv.product_id = ? AND order_items.is_cancelled = ?", productID, false).
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (p *productRepository) VariantCount(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.ProductVariation{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

// HighestPrices returns the MAX cost and selling price over the product's
// variations. A product without variations yields Found=false instead of
// an error.
func (p *productRepository) HighestPrices(ctx context.Context, productID string) (ProductPrices, error) {
	var row struct {
		Count          int64
		HighestCost    decimal.NullDecimal
		HighestSelling decimal.NullDecimal
	}
	err := p.db.WithContext(ctx).
		Model(&models.ProductVariation{}).
		Where("product_id = ?", productID).
		Select("COUNT(*) AS count, MAX(cost_price) AS highest_cost, MAX(selling_price) AS highest_selling").
		Scan(&row).Error
	if err != nil {
		return ProductPrices{}, err
	}
	if row.Count == 0 {
		return ProductPrices{}, nil
	}
	return ProductPrices{
		Found:          true,
		HighestCost:    row.HighestCost.Decimal,
		HighestSelling: row.HighestSelling.Decimal,
	}, nil
}

func likeLower(keyword string) string {
	return strings.ToLower(keyword)
}
