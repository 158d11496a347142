package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Order struct {
	ID        string       `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Code      string       `gorm:"size:36;not null;uniqueIndex" json:"code"`
	UserID    *string      `gorm:"size:36;index" json:"user"`
	User      *User        `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;" json:"-"`
	StatusID  *string      `gorm:"size:36;index" json:"status"`
	Status    *OrderStatus `gorm:"foreignKey:StatusID" json:"-"`
	Items     []OrderItem  `gorm:"foreignKey:OrderID" json:"-"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (os *OrderStatus) BeforeCreate(tx *gorm.DB) (err error) {
	if os.ID == "" {
		os.ID = uuid.New().String()
	}
	return
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Code == "" {
		o.Code = uuid.New().String()
	}
	return
}
