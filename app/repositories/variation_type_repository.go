package repositories

import (
	"context"
	"errors"

	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

var ErrVariationTypeInUse = errors.New("variation type options are referenced by variations")

type VariationTypeRepositoryImpl interface {
	Create(ctx context.Context, variationType *models.VariationType) error
	Update(ctx context.Context, variationType *models.VariationType) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.VariationType, error)
	GetAll(ctx context.Context) ([]models.VariationType, error)
	Search(ctx context.Context, keyword string) ([]models.VariationType, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.VariationType, error)

	CreateOption(ctx context.Context, option *models.VariationOption) error
	GetOptionsByType(ctx context.Context, typeID string) ([]models.VariationOption, error)
	GetOptionsByIDs(ctx context.Context, ids []string) ([]models.VariationOption, error)
}

type variationTypeRepository struct {
	db *gorm.DB
}

func NewVariationTypeRepository(db *gorm.DB) VariationTypeRepositoryImpl {
	return &variationTypeRepository{db}
}

func (r *variationTypeRepository) Create(ctx context.Context, variationType *models.VariationType) error {
	return r.db.WithContext(ctx).Create(variationType).Error
}

func (r *variationTypeRepository) Update(ctx context.Context, variationType *models.VariationType) error {
	return r.db.WithContext(ctx).Save(variationType).Error
}

// Delete is protected: it refuses while any variation still references an
// option of this type.
func (r *variationTypeRepository) Delete(ctx context.Context, id string) error {
	var count int64
	err := r.db.WithContext(ctx).
		Table("variation_option_combinations voc").
		Joins("JOIN variation_options vo ON vo.id = voc.variation_option_id").
		Where("vo.variation_type_id = ?", id).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrVariationTypeInUse
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.VariationOption{}, "variation_type_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.VariationType{}, "id = ?", id).Error
	})
}

func (r *variationTypeRepository) GetByID(ctx context.Context, id string) (*models.VariationType, error) {
	var variationType models.VariationType
	err := r.db.WithContext(ctx).Preload("Options").First(&variationType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variationType, nil
}

func (r *variationTypeRepository) GetAll(ctx context.Context) ([]models.VariationType, error) {
	var variationTypes []models.VariationType
	err := r.db.WithContext(ctx).Preload("Options").Order("created_at DESC").Find(&variationTypes).Error
	return variationTypes, err
}

func (r *variationTypeRepository) Search(ctx context.Context, keyword string) ([]models.VariationType, error) {
	var variationTypes []models.VariationType
	err := r.db.WithContext(ctx).
		Preload("Options").
		Where("LOWER(name) LIKE ?", "%"+likeLower(keyword)+"%").
		Order("created_at DESC").
		Find(&variationTypes).Error
	return variationTypes, err
}

func (r *variationTypeRepository) GetByIDs(ctx context.Context, ids []string) ([]models.VariationType, error) {
	var variationTypes []models.VariationType
	if len(ids) == 0 {
		return variationTypes, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&variationTypes).Error
	return variationTypes, err
}

func (r *variationTypeRepository) CreateOption(ctx context.Context, option *models.VariationOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

// GetOptionsByType yields an empty slice for an unknown parent type.
func (r *variationTypeRepository) GetOptionsByType(ctx context.Context, typeID string) ([]models.VariationOption, error) {
	var options []models.VariationOption
	err := r.db.WithContext(ctx).
		Preload("VariationType").
		Where("variation_type_id = ?", typeID).
		Order("created_at DESC").
		Find(&options).Error
	return options, err
}

func (r *variationTypeRepository) GetOptionsByIDs(ctx context.Context, ids []string) ([]models.VariationOption, error) {
	var options []models.VariationOption
	if len(ids) == 0 {
		return options, nil
	}
	err := r.db.WithContext(ctx).Preload("VariationType").Where("id IN ?", ids).Find(&options).Error
	return options, err
}
