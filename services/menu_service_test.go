package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuCreateValidations(t *testing.T) {
	fx := newFixture(t)
	svc := NewMenuService(fx.Menu, fx.Feed)

	_, err := svc.Create(&MenuItemIn{Name: "  ", Price: 5})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(&MenuItemIn{Name: "Soup", Price: -1})
	assert.ErrorIs(t, err, ErrNegativePrice)

	item, err := svc.Create(&MenuItemIn{Name: " Soup ", Price: 0, Category: " Starters "})
	require.NoError(t, err)
	assert.Equal(t, "Soup", item.Name)
	assert.Equal(t, "Starters", item.Category)
	assert.Zero(t, item.Price) // free items are allowed
}

func TestMenuUpdate(t *testing.T) {
	fx := newFixture(t)
	svc := NewMenuService(fx.Menu, fx.Feed)

	item, err := svc.Create(&MenuItemIn{Name: "Soup", Price: 8, Category: "Starters"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(item.ID, &MenuItemIn{Name: "Spicy Soup", Price: 9.5, Category: "Starters"}))

	stored, err := fx.Menu.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spicy Soup", stored.Name)
	assert.InDelta(t, 9.5, stored.Price, 1e-9)
}

func TestMenuDeleteKeepsOrderLines(t *testing.T) {
	fx := newFixture(t)
	svc := NewMenuService(fx.Menu, fx.Feed)
	orders := fx.orderService()
	tbl := seedTable(t, fx.DB, "T1")

	item, err := svc.Create(&MenuItemIn{Name: "Soup", Price: 8})
	require.NoError(t, err)

	orderID, err := orders.Place(tbl.ID, &PlaceOrderIn{Items: []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID))

	lines, err := fx.Orders.LinesByOrder(orderID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, item.ID, lines[0].MenuItemID)
}
