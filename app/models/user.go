package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Email       string     `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	FirstName   string     `gorm:"size:150" json:"first_name"`
	LastName    string     `gorm:"size:150" json:"last_name"`
	PhoneNumber string     `gorm:"size:15" json:"phone_number"`
	Gender      string     `gorm:"size:8" json:"gender"`
	Address     string     `gorm:"type:text" json:"address"`
	ZipCode     string     `gorm:"size:10" json:"zip_code"`
	City        string     `gorm:"size:100" json:"city"`
	Country     string     `gorm:"size:100" json:"country"`
	IsVerified  bool       `gorm:"default:false" json:"is_verified"`
	IsStaff     bool       `gorm:"default:false" json:"is_staff"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
