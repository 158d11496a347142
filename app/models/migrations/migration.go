package migrations

import (
	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.VerificationCode{},
		&models.Document{},
		&models.Settings{},
		&models.Category{},
		&models.VariationType{},
		&models.VariationOption{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductVariation{},
		&models.ProductVariationImage{},
		&models.Review{},
		&models.OrderStatus{},
		&models.OrderItemStatus{},
		&models.Order{},
		&models.OrderItem{},
	)
}
