package services

import (
	"fmt"
	"testing"

	"pulsebite/entity"
	"pulsebite/feed"
	"pulsebite/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Table{},
		&entity.Category{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderLine{},
		&entity.Cart{},
		&entity.CartItem{},
	))
	return db
}

type fixture struct {
	DB         *gorm.DB
	Feed       *feed.Feed
	Tables     *repository.TableRepository
	Categories *repository.CategoryRepository
	Menu       *repository.MenuRepository
	Orders     *repository.OrderRepository
	Carts      *repository.CartRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	return &fixture{
		DB:         db,
		Feed:       feed.New(),
		Tables:     repository.NewTableRepository(db),
		Categories: repository.NewCategoryRepository(db),
		Menu:       repository.NewMenuRepository(db),
		Orders:     repository.NewOrderRepository(db),
		Carts:      repository.NewCartRepository(db),
	}
}

func (fx *fixture) orderService() *OrderService {
	return NewOrderService(fx.DB, fx.Orders, fx.Tables, fx.Carts, fx.Feed)
}

func (fx *fixture) cartService() *CartService {
	return NewCartService(fx.DB, fx.Carts, fx.Menu, fx.Feed, DefaultTaxRate)
}

func (fx *fixture) lifecycle() *OrderLifecycle {
	return NewOrderLifecycle(fx.DB, fx.Orders, fx.Feed)
}

func seedTable(t *testing.T, db *gorm.DB, name string) entity.Table {
	t.Helper()
	tbl := entity.Table{Name: name}
	require.NoError(t, db.Create(&tbl).Error)
	return tbl
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64, category string) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Price: price, Category: category}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedOrder(t *testing.T, db *gorm.DB, tableID uint, status entity.OrderStatus) entity.Order {
	t.Helper()
	o := entity.Order{TableID: tableID, Status: status}
	require.NoError(t, db.Create(&o).Error)
	return o
}
