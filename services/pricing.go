package services

import (
	"pulsebite/entity"
)

// DefaultTaxRate applies when no TAX_RATE is configured.
const DefaultTaxRate = 0.12

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// PricedItem is a (menu item, quantity) pair to be priced.
type PricedItem struct {
	MenuItemID uint
	Quantity   int
}

// PriceItems computes subtotal/tax/total against current menu prices.
// Items whose menu reference no longer resolves are silently excluded.
// No caching: callers invoke this fresh on every read, so an edited menu
// price is reflected immediately.
func PriceItems(items []PricedItem, menuByID map[uint]entity.MenuItem, taxRate float64) Totals {
	var subtotal float64
	for _, it := range items {
		item, ok := menuByID[it.MenuItemID]
		if !ok {
			continue
		}
		subtotal += item.Price * float64(it.Quantity)
	}
	tax := subtotal * taxRate
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// MenuByID builds the lookup used by pricing and priority.
func MenuByID(items []entity.MenuItem) map[uint]entity.MenuItem {
	m := make(map[uint]entity.MenuItem, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return m
}
