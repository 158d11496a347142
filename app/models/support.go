package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationCode struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Code        string    `gorm:"size:6;not null" json:"code"`
	Email       string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Hash        string    `gorm:"type:text" json:"hash"`
	IsEmailSent bool      `gorm:"default:false" json:"is_email_sent"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Document struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UUID      string    `gorm:"size:36;not null;uniqueIndex" json:"uuid"`
	Name      string    `gorm:"size:255" json:"name"`
	Model     string    `gorm:"size:255;not null" json:"model"`
	Status    string    `gorm:"size:255;default:'processing'" json:"status"`
	Document  string    `gorm:"size:1024" json:"document"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (vc *VerificationCode) BeforeCreate(tx *gorm.DB) (err error) {
	if vc.ID == "" {
		vc.ID = uuid.New().String()
	}
	if vc.Code == "" {
		vc.Code = fmt.Sprintf("%06d", rand.Intn(1000000))
	}
	return
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.UUID == "" {
		d.UUID = uuid.New().String()
	}
	return
}
