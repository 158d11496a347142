package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemStatus struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID          string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID     string           `gorm:"size:36;not null;index" json:"order"`
	ProductID   string           `gorm:"size:36;not null;index" json:"item"`
	Product     Product          `gorm:"foreignKey:ProductID" json:"-"`
	VariationID string           `gorm:"size:36;not null;index" json:"variation"`
	Variation   ProductVariation `gorm:"foreignKey:VariationID" json:"-"`
	Quantity    int              `gorm:"not null" json:"quantity"`
	IsCancelled bool             `gorm:"default:false" json:"is_cancelled"`
	StatusID    *string          `gorm:"size:36;index" json:"status"`
	Status      *OrderItemStatus `gorm:"foreignKey:StatusID" json:"-"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (ois *OrderItemStatus) BeforeCreate(tx *gorm.DB) (err error) {
	if ois.ID == "" {
		ois.ID = uuid.New().String()
	}
	return
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
