package entity

import (
	"gorm.io/gorm"
)

// OrderLine is immutable after creation. No price snapshot is stored;
// the line price always resolves live from the menu item.
type OrderLine struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // may be gone; readers skip dangling refs

	Quantity int `json:"quantity"`
}
