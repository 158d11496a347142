package fakers

import (
	"time"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func UserFaker(db *gorm.DB) *models.User {
	return &models.User{
		ID:          uuid.New().String(),
		Email:       faker.Email(),
		Password:    helpers.HashPassword("password123"),
		FirstName:   faker.FirstName(),
		LastName:    faker.LastName(),
		PhoneNumber: faker.Phonenumber(),
		Address:     faker.Sentence(),
		IsVerified:  true,
		IsStaff:     false,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func StaffFaker(db *gorm.DB) *models.User {
	user := UserFaker(db)
	user.IsStaff = true
	return user
}
