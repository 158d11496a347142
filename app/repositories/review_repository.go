package repositories

import (
	"context"

	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

// ReviewSummary is the per-product aggregate served to storefront clients.
// AverageRating is 0, never null, when no reviews exist.
type ReviewSummary struct {
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

type ReviewRepositoryImpl interface {
	Create(ctx context.Context, review *models.Review) error
	GetByProductSlug(ctx context.Context, productSlug string) ([]models.Review, error)
	Summary(ctx context.Context, productID string) (ReviewSummary, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryImpl {
	return &reviewRepository{db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByProductSlug(ctx context.Context, productSlug string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Joins("JOIN products p ON p.id = reviews.product_id").
		Where("p.slug = ? AND reviews.is_active = ?", productSlug, true).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// Summary runs COUNT and AVG in a single statement.
func (r *reviewRepository) Summary(ctx context.Context, productID string) (ReviewSummary, error) {
	var row struct {
		TotalReviews  int64
		AverageRating *float64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("product_id = ? AND is_active = ?", productID, true).
		Select("COUNT(*) AS total_reviews, AVG(rating) AS average_rating").
		Scan(&row).Error
	if err != nil {
		return ReviewSummary{}, err
	}
	summary := ReviewSummary{TotalReviews: row.TotalReviews}
	if row.AverageRating != nil {
		summary.AverageRating = *row.AverageRating
	}
	return summary, nil
}
