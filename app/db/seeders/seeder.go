package seeders

import (
	"github.com/bepasal/bazar/app/db/fakers"
	"github.com/bepasal/bazar/app/models"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

func SeedersRegister(db *gorm.DB) []Seeder {
	category := fakers.CategoryFaker(db)
	sizeType := fakers.VariationTypeFaker(db, "Small", "Medium", "Large")
	colourType := fakers.VariationTypeFaker(db, "Red", "Blue")

	seeders := []Seeder{
		{Seeder: fakers.UserFaker(db)},
		{Seeder: fakers.StaffFaker(db)},
		{Seeder: category},
		{Seeder: sizeType},
		{Seeder: colourType},
		{Seeder: fakers.OrderStatusFaker("Pending", 1)},
		{Seeder: fakers.OrderStatusFaker("Processing", 2)},
		{Seeder: fakers.OrderStatusFaker("Completed", 3)},
		{Seeder: fakers.OrderItemStatusFaker("Pending", 1)},
		{Seeder: fakers.OrderItemStatusFaker("Shipped", 2)},
		{Seeder: fakers.OrderItemStatusFaker("Delivered", 3)},
	}

	for i := 0; i < 5; i++ {
		seeders = append(seeders, Seeder{Seeder: fakers.ProductFaker(db, category, sizeType, colourType)})
	}

	defaults := models.DefaultSettings()
	seeders = append(seeders, Seeder{Seeder: &defaults})

	return seeders
}

func DBSeed(db *gorm.DB) error {
	for _, seeder := range SeedersRegister(db) {
		if err := db.Debug().Create(seeder.Seeder).Error; err != nil {
			return err
		}
	}
	return nil
}
