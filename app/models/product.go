package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID                    string             `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name                  string             `gorm:"size:255;not null" json:"name"`
	Slug                  string             `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description           string             `gorm:"type:text" json:"description"`
	ThumbnailImage        string             `gorm:"size:1024" json:"thumbnail_image"`
	IsActive              bool               `gorm:"default:true" json:"is_active"`
	Categories            []Category         `gorm:"many2many:product_categories;" json:"-"`
	EnabledVariationTypes []VariationType    `gorm:"many2many:product_variation_types;" json:"-"`
	DefaultVariantID      *string            `gorm:"size:36;index" json:"default_variant"`
	DefaultVariant        *ProductVariation  `gorm:"foreignKey:DefaultVariantID" json:"-"`
	Images                []ProductImage     `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Variations            []ProductVariation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

type ProductImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;not null;index" json:"product"`
	Image     string    `gorm:"size:1024" json:"image"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}
