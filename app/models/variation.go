package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VariationType struct {
	ID        string            `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string            `gorm:"size:100;not null" json:"name"`
	Options   []VariationOption `gorm:"foreignKey:VariationTypeID" json:"-"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type VariationOption struct {
	ID              string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name            string        `gorm:"size:100;not null" json:"name"`
	VariationTypeID string        `gorm:"size:36;not null;index" json:"variation_type"`
	VariationType   VariationType `gorm:"foreignKey:VariationTypeID" json:"-"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type ProductVariation struct {
	ID                         string                  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID                  string                  `gorm:"size:36;not null;index" json:"product"`
	Product                    Product                 `gorm:"foreignKey:ProductID" json:"-"`
	Slug                       string                  `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	CostPrice                  decimal.Decimal         `gorm:"type:decimal(16,2);not null" json:"-"`
	SellingPrice               decimal.Decimal         `gorm:"type:decimal(16,2);not null" json:"selling_price"`
	Stock                      int                     `gorm:"not null;default:0" json:"stock"`
	DigitalFile                string                  `gorm:"size:1024" json:"-"`
	IsActive                   bool                    `gorm:"default:true" json:"is_active"`
	VariationOptionCombination []VariationOption       `gorm:"many2many:variation_option_combinations;" json:"-"`
	Images                     []ProductVariationImage `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt                  time.Time               `json:"created_at"`
	UpdatedAt                  time.Time               `json:"updated_at"`
}

type ProductVariationImage struct {
	ID                 string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductVariationID string    `gorm:"size:36;not null;index" json:"product_variation"`
	Image              string    `gorm:"size:1024" json:"image"`
	IsActive           bool      `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (vt *VariationType) BeforeCreate(tx *gorm.DB) (err error) {
	if vt.ID == "" {
		vt.ID = uuid.New().String()
	}
	return
}

func (vo *VariationOption) BeforeCreate(tx *gorm.DB) (err error) {
	if vo.ID == "" {
		vo.ID = uuid.New().String()
	}
	return
}

func (pv *ProductVariation) BeforeCreate(tx *gorm.DB) (err error) {
	if pv.ID == "" {
		pv.ID = uuid.New().String()
	}
	return
}

func (pvi *ProductVariationImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pvi.ID == "" {
		pvi.ID = uuid.New().String()
	}
	return
}
