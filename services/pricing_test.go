package services

import (
	"testing"

	"pulsebite/entity"

	"github.com/stretchr/testify/assert"
)

func TestPriceItems(t *testing.T) {
	menu := map[uint]entity.MenuItem{
		1: {Name: "Soup", Price: 8.00},
		2: {Name: "Noodles", Price: 12.50},
	}

	totals := PriceItems([]PricedItem{
		{MenuItemID: 1, Quantity: 2},
		{MenuItemID: 2, Quantity: 1},
	}, menu, DefaultTaxRate)

	assert.InDelta(t, 28.50, totals.Subtotal, 1e-9)
	assert.InDelta(t, 28.50*0.12, totals.Tax, 1e-9)
	assert.InDelta(t, 28.50*1.12, totals.Total, 1e-9)
}

func TestPriceItemsSkipsDanglingRefs(t *testing.T) {
	menu := map[uint]entity.MenuItem{1: {Name: "Soup", Price: 8.00}}

	totals := PriceItems([]PricedItem{
		{MenuItemID: 1, Quantity: 1},
		{MenuItemID: 99, Quantity: 5}, // deleted menu item
	}, menu, DefaultTaxRate)

	assert.InDelta(t, 8.00, totals.Subtotal, 1e-9)
}

func TestPriceItemsEmpty(t *testing.T) {
	totals := PriceItems(nil, nil, DefaultTaxRate)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Total)
}

func TestPriceItemsCustomTaxRate(t *testing.T) {
	menu := map[uint]entity.MenuItem{1: {Price: 100}}
	totals := PriceItems([]PricedItem{{MenuItemID: 1, Quantity: 1}}, menu, 0.07)
	assert.InDelta(t, 7.0, totals.Tax, 1e-9)
	assert.InDelta(t, 107.0, totals.Total, 1e-9)
}

func TestMenuByID(t *testing.T) {
	items := []entity.MenuItem{
		{Name: "a"},
		{Name: "b"},
	}
	items[0].ID = 1
	items[1].ID = 2
	m := MenuByID(items)
	assert.Len(t, m, 2)
	assert.Equal(t, "b", m[2].Name)
}
