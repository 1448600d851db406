package services

import (
	"testing"
	"time"

	"pulsebite/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

func TestAdminProjectorRecomputesOnWrites(t *testing.T) {
	fx := newFixture(t)
	seedTable(t, fx.DB, "T1")

	p := NewAdminProjector(fx.DB, fx.Feed)
	defer p.Close()

	require.Eventually(t, func() bool {
		return len(p.Snapshot().Tables) == 1
	}, waitFor, tick, "initial snapshot never arrived")

	seedMenuItem(t, fx.DB, "Soup", 8, "Starters")
	fx.Feed.Notify(entity.CollectionMenuItems)

	require.Eventually(t, func() bool {
		return len(p.Snapshot().Menu) == 1
	}, waitFor, tick, "menu write never reflected")
}

func TestKitchenProjectorTracksOpenOrders(t *testing.T) {
	fx := newFixture(t)
	tbl := seedTable(t, fx.DB, "T1")
	o := seedOrder(t, fx.DB, tbl.ID, entity.StatusPending)

	p := NewKitchenProjector(fx.DB, fx.Feed)
	defer p.Close()

	require.Eventually(t, func() bool {
		return len(p.Snapshot().Tickets) == 1
	}, waitFor, tick)
	assert.Equal(t, "T1", p.Snapshot().Tickets[0].TableName)

	// delivered orders fall off the rail
	require.NoError(t, fx.lifecycle().SetStatus(o.ID, entity.StatusDelivered))

	require.Eventually(t, func() bool {
		return len(p.Snapshot().Tickets) == 0
	}, waitFor, tick)
}

func TestGuestProjectorIsScopedToItsTable(t *testing.T) {
	fx := newFixture(t)
	t1 := seedTable(t, fx.DB, "T1")
	t2 := seedTable(t, fx.DB, "T2")
	seedOrder(t, fx.DB, t2.ID, entity.StatusPending)

	p := NewGuestProjector(fx.DB, fx.Feed, t1.ID, DefaultTaxRate)
	defer p.Close()

	seedOrder(t, fx.DB, t1.ID, entity.StatusCooking)
	fx.Feed.Notify(entity.CollectionOrders)

	require.Eventually(t, func() bool {
		v := p.Snapshot()
		return v.ActiveOrder != nil && v.ActiveOrder.Order.TableID == t1.ID
	}, waitFor, tick)
	assert.Equal(t, entity.StatusCooking, p.Snapshot().ActiveOrder.Order.Status)
}

func TestProjectorCloseIsIdempotent(t *testing.T) {
	fx := newFixture(t)
	p := NewAdminProjector(fx.DB, fx.Feed)

	p.Close()
	p.Close()

	// writers are unaffected by a closed projector
	fx.Feed.Notify(entity.CollectionOrders)

	select {
	case _, ok := <-p.Updates():
		// channel may flush a final snapshot, then must close
		if ok {
			_, ok = <-p.Updates()
			assert.False(t, ok)
		}
	case <-time.After(waitFor):
		t.Fatal("updates channel never closed")
	}
}

func TestQueryGuestView(t *testing.T) {
	fx := newFixture(t)
	tbl := seedTable(t, fx.DB, "T1")
	soup := seedMenuItem(t, fx.DB, "Soup", 8, "Hot Starter")
	svc := fx.cartService()
	require.NoError(t, svc.Add(tbl.ID, &AddToCartIn{MenuItemID: soup.ID, Quantity: 2}))

	view, err := QueryGuestView(fx.DB, tbl.ID, DefaultTaxRate)
	require.NoError(t, err)

	require.Len(t, view.Sections, 1)
	assert.Equal(t, "Hot Starter", view.Sections[0].Title)
	require.Len(t, view.Cart, 1)
	assert.InDelta(t, 16.0, view.Totals.Subtotal, 1e-9)
	assert.Nil(t, view.ActiveOrder)
}
