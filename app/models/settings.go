package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Settings is a single-row table. The settings service keeps the loaded row
// in memory and reloads it after admin updates.
type Settings struct {
	ID                 string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UsdNprExchangeRate decimal.Decimal `gorm:"type:decimal(16,2);default:135.00" json:"usd_npr_exchange_rate"`
}

func (s *Settings) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

func DefaultSettings() Settings {
	return Settings{UsdNprExchangeRate: decimal.NewFromFloat(135.00)}
}
