package entity

import (
	"gorm.io/gorm"
)

// CartItem carries no price. Totals are always computed from the current
// menu price at read time.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `json:"quantity"`
}
