package services

import (
	"testing"

	"pulsebite/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAdvanceWalksTheWorkflow(t *testing.T) {
	fx := newFixture(t)
	lc := fx.lifecycle()
	tbl := seedTable(t, fx.DB, "T1")
	o := seedOrder(t, fx.DB, tbl.ID, entity.StatusPending)

	for _, want := range []entity.OrderStatus{
		entity.StatusCooking, entity.StatusReady, entity.StatusDelivered,
	} {
		got, err := lc.Advance(o.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// terminal: a fourth advance is a no-op, not an error
	got, err := lc.Advance(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, got)

	stored, err := fx.Orders.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, stored.Status)
}

func TestAdvanceUnknownOrder(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.lifecycle().Advance(4242)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetStatusOverridesBackwards(t *testing.T) {
	fx := newFixture(t)
	lc := fx.lifecycle()
	tbl := seedTable(t, fx.DB, "T1")
	o := seedOrder(t, fx.DB, tbl.ID, entity.StatusDelivered)

	// operator correction may move against the workflow direction
	require.NoError(t, lc.SetStatus(o.ID, entity.StatusCooking))

	stored, err := fx.Orders.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCooking, stored.Status)

	// and the order can advance again from there
	got, err := lc.Advance(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, got)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	fx := newFixture(t)
	tbl := seedTable(t, fx.DB, "T1")
	o := seedOrder(t, fx.DB, tbl.ID, entity.StatusPending)

	err := fx.lifecycle().SetStatus(o.ID, "Burnt")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatusUnknownOrder(t *testing.T) {
	fx := newFixture(t)
	err := fx.lifecycle().SetStatus(4242, entity.StatusReady)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStatusSequenceHelpers(t *testing.T) {
	seq := entity.StatusSequence()
	require.Len(t, seq, 4)
	assert.Equal(t, entity.StatusPending, seq[0])
	assert.Equal(t, entity.StatusDelivered, seq[3])

	assert.Equal(t, 0, entity.StatusPending.Index())
	assert.Equal(t, 3, entity.StatusDelivered.Index())
	assert.Equal(t, -1, entity.OrderStatus("Burnt").Index())
	assert.False(t, entity.OrderStatus("").Valid())
	assert.Equal(t, entity.StatusDelivered, entity.StatusDelivered.Next())
	assert.Equal(t, entity.StatusCooking, entity.StatusPending.Next())
}
