package services

import (
	"testing"

	"pulsebite/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cats(names ...string) []entity.Category {
	out := make([]entity.Category, len(names))
	for i, n := range names {
		out[i] = entity.Category{Name: n}
	}
	return out
}

func TestResolveDefaultCategory(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		touched   bool
		available []entity.Category
		want      string
	}{
		{"no categories clears everything", "Mains", true, nil, ""},
		{"untouched falls back to first", "", false, cats("Starters", "Mains"), "Starters"},
		{"untouched but current still valid", "Mains", false, cats("Starters", "Mains"), "Mains"},
		{"untouched and current vanished", "Desserts", false, cats("Starters", "Mains"), "Starters"},
		{"touched blank stays blank", "", true, cats("Starters"), ""},
		{"touched valid choice sticks", "Mains", true, cats("Starters", "Mains"), "Mains"},
		{"touched choice vanished", "Desserts", true, cats("Starters"), "Starters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDefaultCategory(tt.current, tt.touched, tt.available))
		})
	}
}

func TestCategoryCRUD(t *testing.T) {
	fx := newFixture(t)
	svc := NewCategoryService(fx.Categories, fx.Feed)

	c, err := svc.Create("  Starters ")
	require.NoError(t, err)
	assert.Equal(t, "Starters", c.Name)

	_, err = svc.Create("   ")
	assert.ErrorIs(t, err, ErrNameRequired)

	require.NoError(t, svc.Rename(c.ID, "Small Plates"))
	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Small Plates", list[0].Name)

	require.NoError(t, svc.Delete(c.ID))
	list, err = svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Deleting a category leaves menu items holding the orphaned name.
func TestCategoryDeleteLeavesMenuItemsBehind(t *testing.T) {
	fx := newFixture(t)
	svc := NewCategoryService(fx.Categories, fx.Feed)

	c, err := svc.Create("Seasonal")
	require.NoError(t, err)
	item := seedMenuItem(t, fx.DB, "Pumpkin Soup", 9.50, "Seasonal")

	require.NoError(t, svc.Delete(c.ID))

	var stored entity.MenuItem
	require.NoError(t, fx.DB.First(&stored, item.ID).Error)
	assert.Equal(t, "Seasonal", stored.Category)
}
