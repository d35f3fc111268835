package seeders

import (
	"os"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/auth"
)

func init() {
	Register("admin", SeedAdmin)
	Register("cards", SeedCards)
}

// SeedAdmin creates the initial admin account. The password comes from
// ADMIN_PASSWORD; without it the seeder is skipped, so no deployment
// ever ships a known default credential.
func SeedAdmin(db *gorm.DB) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@cartinhas.local"
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     "Admin",
		Email:    email,
		Password: hash,
		Role:     "admin",
	}).Error
}

// SeedCards loads a starter catalog so a fresh install is not empty.
func SeedCards(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Card{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cards := []models.Card{
		{Name: "Black Lotus", Description: "Alpha printing, heavy play wear.", Price: 49999.90, Stock: 1},
		{Name: "Lightning Bolt", Description: "Classic red burn spell.", Price: 24.90, Stock: 32},
		{Name: "Counterspell", Description: "Blue staple, near mint.", Price: 19.90, Stock: 18},
		{Name: "Llanowar Elves", Description: "Green mana dork.", Price: 9.90, Stock: 40},
	}
	return db.Create(&cards).Error
}
