package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review only exists for tenants that have the ecommerce app enabled.
type Review struct {
	ID            string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID     string    `gorm:"size:36;not null;index" json:"product"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`
	ReviewerName  string    `gorm:"size:255" json:"reviewer_name"`
	ReviewerEmail string    `gorm:"size:255" json:"reviewer_email"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (rv *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if rv.ID == "" {
		rv.ID = uuid.New().String()
	}
	return
}
