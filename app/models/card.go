package models

import "gorm.io/gorm"

// Card is a trading card offered in the catalog. Prices are stored in
// BRL.
type Card struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `gorm:"type:text"               json:"description"`
	Price       float64 `gorm:"not null;default:0"      json:"price"`
	Image       string  `gorm:"size:1024"               json:"image"`
	Stock       int     `gorm:"not null;default:0"      json:"stock"`
}
