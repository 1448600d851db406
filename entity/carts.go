package entity

import (
	"gorm.io/gorm"
)

// Cart is the shared guest cart of one table, one per table.
type Cart struct {
	gorm.Model
	TableID uint  `json:"tableId" gorm:"uniqueIndex"`
	Table   Table `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
