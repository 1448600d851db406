package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	// unique by convention only; menu items reference the name, not the id
	Name string `json:"name"`
}
