package services

import (
	"testing"

	"pulsebite/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceValidations(t *testing.T) {
	fx := newFixture(t)
	svc := fx.orderService()
	tbl := seedTable(t, fx.DB, "T1")
	item := seedMenuItem(t, fx.DB, "Soup", 8, "Starters")

	_, err := svc.Place(tbl.ID, &PlaceOrderIn{})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.Place(tbl.ID, &PlaceOrderIn{Items: []OrderItemIn{{MenuItemID: item.ID, Quantity: 0}}})
	assert.ErrorIs(t, err, ErrBadQuantity)

	_, err = svc.Place(4242, &PlaceOrderIn{Items: []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestPlaceWritesOrderAndLines(t *testing.T) {
	fx := newFixture(t)
	svc := fx.orderService()
	tbl := seedTable(t, fx.DB, "T1")
	soup := seedMenuItem(t, fx.DB, "Soup", 8, "Starters")
	tea := seedMenuItem(t, fx.DB, "Iced Tea", 3, "Drinks")

	id, err := svc.Place(tbl.ID, &PlaceOrderIn{
		Items: []OrderItemIn{
			{MenuItemID: soup.ID, Quantity: 2},
			{MenuItemID: tea.ID, Quantity: 1},
		},
		Note: "no chili",
	})
	require.NoError(t, err)

	o, err := fx.Orders.Get(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Equal(t, tbl.ID, o.TableID)
	assert.Equal(t, "no chili", o.Note)

	lines, err := fx.Orders.LinesByOrder(id)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestPlaceFromCartClearsCart(t *testing.T) {
	fx := newFixture(t)
	orders := fx.orderService()
	carts := fx.cartService()
	tbl := seedTable(t, fx.DB, "T1")
	soup := seedMenuItem(t, fx.DB, "Soup", 8, "Starters")

	require.NoError(t, carts.Add(tbl.ID, &AddToCartIn{MenuItemID: soup.ID, Quantity: 2}))

	id, err := orders.PlaceFromCart(tbl.ID, "")
	require.NoError(t, err)

	lines, err := fx.Orders.LinesByOrder(id)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	cart, totals, err := carts.Get(tbl.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, totals.Total)

	// checking out again with nothing in the cart fails
	_, err = orders.PlaceFromCart(tbl.ID, "")
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestDeleteOrderRemovesLines(t *testing.T) {
	fx := newFixture(t)
	svc := fx.orderService()
	tbl := seedTable(t, fx.DB, "T1")
	soup := seedMenuItem(t, fx.DB, "Soup", 8, "Starters")

	id, err := svc.Place(tbl.ID, &PlaceOrderIn{Items: []OrderItemIn{{MenuItemID: soup.ID, Quantity: 1}}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(id))

	_, err = fx.Orders.Get(id)
	assert.Error(t, err)
	lines, err := fx.Orders.LinesByOrder(id)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// A guest scans T1's code, orders a Soup from a "Hot Starter" category,
// the kitchen works it Pending through Ready, and every derived view
// agrees along the way.
func TestOrderRoundTrip(t *testing.T) {
	fx := newFixture(t)
	orders := fx.orderService()
	lc := fx.lifecycle()
	tbl := seedTable(t, fx.DB, "T1")
	soup := seedMenuItem(t, fx.DB, "Soup", 8.00, "Hot Starter")

	id, err := orders.Place(tbl.ID, &PlaceOrderIn{Items: []OrderItemIn{{MenuItemID: soup.ID, Quantity: 1}}})
	require.NoError(t, err)

	open, err := fx.Orders.ListByStatuses([]entity.OrderStatus{entity.StatusPending, entity.StatusCooking})
	require.NoError(t, err)
	lines, err := fx.Orders.LinesByOrder(id)
	require.NoError(t, err)
	menu, err := fx.Menu.List()
	require.NoError(t, err)
	tables, err := fx.Tables.List()
	require.NoError(t, err)

	tickets := ComputeKitchenTickets(open, lines, menu, tables)
	require.Len(t, tickets, 1)
	assert.Equal(t, entity.StatusPending, tickets[0].Order.Status)
	assert.Equal(t, PriorityExpedite, tickets[0].Priority)
	assert.Equal(t, "T1", tickets[0].TableName)

	st, err := lc.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCooking, st)
	st, err = lc.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, st)

	tableOrders, err := fx.Orders.ListByTable(tbl.ID)
	require.NoError(t, err)
	view := ComputeGuestView(tbl.ID, menu, nil, tableOrders, lines, DefaultTaxRate)
	require.NotNil(t, view.ActiveOrder)
	assert.Equal(t, 2, view.ActiveOrder.StatusIndex)

	totals := PriceItems([]PricedItem{{MenuItemID: soup.ID, Quantity: 1}}, MenuByID(menu), DefaultTaxRate)
	assert.InDelta(t, 8.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.96, totals.Tax, 1e-9)
	assert.InDelta(t, 8.96, totals.Total, 1e-9)
}
