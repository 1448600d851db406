package entity

import (
	"gorm.io/gorm"
)

// User is a staff account. Guests stay anonymous and never sign in.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:kitchen" json:"role"` // admin | kitchen
}
