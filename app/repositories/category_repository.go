package repositories

import (
	"context"
	"errors"

	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryHasChildren   = errors.New("category still has child categories")
	ErrCategoryCycle         = errors.New("category parent chain forms a cycle")
	ErrUnknownParentCategory = errors.New("parent category does not exist")
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Search(ctx context.Context, keyword string) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	HasChildren(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.guardCycle(ctx, category.ID, category.ParentCategoryID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Search(ctx context.Context, keyword string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+likeLower(keyword)+"%").
		Order("created_at DESC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.guardCycle(ctx, category.ID, category.ParentCategoryID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete refuses while children reference the category, mirroring a
// PROTECT foreign key.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	hasChildren, err := r.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return ErrCategoryHasChildren
	}
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) HasChildren(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("parent_category_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// guardCycle walks the parent chain by id and rejects a parent assignment
// that would revisit the node being written.
func (r *categoryRepository) guardCycle(ctx context.Context, id string, parentID *string) error {
	seen := map[string]bool{}
	if id != "" {
		seen[id] = true
	}
	for parentID != nil && *parentID != "" {
		if seen[*parentID] {
			return ErrCategoryCycle
		}
		seen[*parentID] = true
		var parent models.Category
		err := r.db.WithContext(ctx).Select("id", "parent_category_id").First(&parent, "id = ?", *parentID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownParentCategory
			}
			return err
		}
		parentID = parent.ParentCategoryID
	}
	return nil
}
