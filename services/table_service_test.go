package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCreateGeneratesQR(t *testing.T) {
	fx := newFixture(t)
	svc := NewTableService(fx.Tables, fx.Feed, "https://order.example.com")

	tbl, err := svc.Create("Window 2")
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("/table/%d", tbl.ID), tbl.QRTarget)
	assert.NotEmpty(t, tbl.QRImage)
	assert.Equal(t, "image/png", tbl.ImageType)

	// the target and image are persisted, not just decorated on the return
	stored, err := svc.Get(tbl.ID)
	require.NoError(t, err)
	assert.Equal(t, tbl.QRTarget, stored.QRTarget)
	assert.NotEmpty(t, stored.QRImage)
}

func TestTableCreateRequiresName(t *testing.T) {
	fx := newFixture(t)
	svc := NewTableService(fx.Tables, fx.Feed, "")

	_, err := svc.Create("   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestTableDeleteLeavesOrdersDangling(t *testing.T) {
	fx := newFixture(t)
	svc := NewTableService(fx.Tables, fx.Feed, "")

	tbl, err := svc.Create("T1")
	require.NoError(t, err)
	o := seedOrder(t, fx.DB, tbl.ID, "Pending")

	require.NoError(t, svc.Delete(tbl.ID))

	// the order row survives; views drop it from the per-table grouping
	stored, err := fx.Orders.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, tbl.ID, stored.TableID)

	exists, err := fx.Tables.Exists(tbl.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
