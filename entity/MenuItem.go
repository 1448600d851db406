package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`

	// denormalized category name, not a foreign key — renaming or deleting
	// a Category leaves this value behind and readers must tolerate it
	Category string `json:"category,omitempty"`

	OrderLines []OrderLine `json:"-"`
}
