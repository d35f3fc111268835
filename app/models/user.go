package models

import "gorm.io/gorm"

// User is an account on the storefront.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`
	Password string `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	Role     string `gorm:"size:50;default:user" json:"role"`
}

// IsAdmin reports whether the user may access the admin panel.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
