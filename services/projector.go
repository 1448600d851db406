package services

import (
	"sync"

	"pulsebite/entity"
	"pulsebite/feed"

	"gorm.io/gorm"
)

// Projectors hold one feed subscription per dependency collection and
// recompute their role's view whenever any of them emits. Each observer
// role runs on its own subscriptions, so cancelling one view never stalls
// another. Updates() delivers at most the latest view — a slow consumer
// skips intermediate recomputations but never sees stale ordering.

var activeStatuses = []entity.OrderStatus{entity.StatusPending, entity.StatusCooking}

func latest[T any](updates chan T, v T) {
	for {
		select {
		case updates <- v:
			return
		default:
		}
		// replace a stale pending view
		select {
		case <-updates:
		default:
		}
	}
}

// ---------------- Admin ----------------

type AdminProjector struct {
	mu      sync.RWMutex
	view    AdminView
	updates chan AdminView
	done    chan struct{}
	once    sync.Once

	tables     *feed.Subscription[entity.Table]
	categories *feed.Subscription[entity.Category]
	menu       *feed.Subscription[entity.MenuItem]
	orders     *feed.Subscription[entity.Order]
}

func NewAdminProjector(db *gorm.DB, f *feed.Feed) *AdminProjector {
	p := &AdminProjector{
		updates: make(chan AdminView, 1),
		done:    make(chan struct{}),
	}
	createdDesc := func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at DESC") }
	p.tables = feed.Subscribe[entity.Table](f, db, entity.CollectionTables, createdDesc)
	p.categories = feed.Subscribe[entity.Category](f, db, entity.CollectionCategories, createdDesc)
	p.menu = feed.Subscribe[entity.MenuItem](f, db, entity.CollectionMenuItems, createdDesc)
	p.orders = feed.Subscribe[entity.Order](f, db, entity.CollectionOrders, createdDesc)
	go p.run()
	return p
}

func (p *AdminProjector) run() {
	defer close(p.updates)
	var (
		tables     []entity.Table
		categories []entity.Category
		menu       []entity.MenuItem
		orders     []entity.Order
	)
	for {
		select {
		case snap := <-p.tables.C:
			tables = snap
		case snap := <-p.categories.C:
			categories = snap
		case snap := <-p.menu.C:
			menu = snap
		case snap := <-p.orders.C:
			orders = snap
		case <-p.done:
			return
		}
		v := ComputeAdminView(tables, categories, menu, orders)
		p.mu.Lock()
		p.view = v
		p.mu.Unlock()
		latest(p.updates, v)
	}
}

func (p *AdminProjector) Snapshot() AdminView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}

// Updates is closed after Close.
func (p *AdminProjector) Updates() <-chan AdminView { return p.updates }

func (p *AdminProjector) Close() {
	p.once.Do(func() {
		close(p.done)
		p.tables.Close()
		p.categories.Close()
		p.menu.Close()
		p.orders.Close()
	})
}

// ---------------- Kitchen ----------------

type KitchenView struct {
	Tickets []Ticket `json:"tickets"`
}

type KitchenProjector struct {
	mu      sync.RWMutex
	view    KitchenView
	updates chan KitchenView
	done    chan struct{}
	once    sync.Once

	orders *feed.Subscription[entity.Order]
	lines  *feed.Subscription[entity.OrderLine]
	menu   *feed.Subscription[entity.MenuItem]
	tables *feed.Subscription[entity.Table]
}

func NewKitchenProjector(db *gorm.DB, f *feed.Feed) *KitchenProjector {
	p := &KitchenProjector{
		updates: make(chan KitchenView, 1),
		done:    make(chan struct{}),
	}
	p.orders = feed.Subscribe[entity.Order](f, db, entity.CollectionOrders, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status IN ?", activeStatuses).Order("created_at ASC")
	})
	p.lines = feed.Subscribe[entity.OrderLine](f, db, entity.CollectionOrderLines, nil)
	p.menu = feed.Subscribe[entity.MenuItem](f, db, entity.CollectionMenuItems, nil)
	p.tables = feed.Subscribe[entity.Table](f, db, entity.CollectionTables, nil)
	go p.run()
	return p
}

func (p *KitchenProjector) run() {
	defer close(p.updates)
	var (
		orders []entity.Order
		lines  []entity.OrderLine
		menu   []entity.MenuItem
		tables []entity.Table
	)
	for {
		select {
		case snap := <-p.orders.C:
			orders = snap
		case snap := <-p.lines.C:
			lines = snap
		case snap := <-p.menu.C:
			menu = snap
		case snap := <-p.tables.C:
			tables = snap
		case <-p.done:
			return
		}
		v := KitchenView{Tickets: ComputeKitchenTickets(orders, lines, menu, tables)}
		p.mu.Lock()
		p.view = v
		p.mu.Unlock()
		latest(p.updates, v)
	}
}

func (p *KitchenProjector) Snapshot() KitchenView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}

func (p *KitchenProjector) Updates() <-chan KitchenView { return p.updates }

func (p *KitchenProjector) Close() {
	p.once.Do(func() {
		close(p.done)
		p.orders.Close()
		p.lines.Close()
		p.menu.Close()
		p.tables.Close()
	})
}

// ---------------- Guest ----------------

// GuestProjector follows a single table: its menu, shared cart and most
// recent order. One is started per table stream and stopped when the last
// watcher leaves.
type GuestProjector struct {
	tableID uint
	taxRate float64

	mu      sync.RWMutex
	view    GuestView
	updates chan GuestView
	done    chan struct{}
	once    sync.Once

	menu      *feed.Subscription[entity.MenuItem]
	orders    *feed.Subscription[entity.Order]
	lines     *feed.Subscription[entity.OrderLine]
	cartItems *feed.Subscription[entity.CartItem]
}

func NewGuestProjector(db *gorm.DB, f *feed.Feed, tableID uint, taxRate float64) *GuestProjector {
	p := &GuestProjector{
		tableID: tableID,
		taxRate: taxRate,
		updates: make(chan GuestView, 1),
		done:    make(chan struct{}),
	}
	p.menu = feed.Subscribe[entity.MenuItem](f, db, entity.CollectionMenuItems, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC")
	})
	p.orders = feed.Subscribe[entity.Order](f, db, entity.CollectionOrders, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("table_id = ?", tableID).Order("created_at DESC")
	})
	p.lines = feed.Subscribe[entity.OrderLine](f, db, entity.CollectionOrderLines, nil)
	p.cartItems = feed.Subscribe[entity.CartItem](f, db, entity.CollectionCartItems, func(tx *gorm.DB) *gorm.DB {
		return tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
			Where("carts.table_id = ?", tableID)
	})
	go p.run()
	return p
}

func (p *GuestProjector) run() {
	defer close(p.updates)
	var (
		menu      []entity.MenuItem
		orders    []entity.Order
		lines     []entity.OrderLine
		cartItems []entity.CartItem
	)
	for {
		select {
		case snap := <-p.menu.C:
			menu = snap
		case snap := <-p.orders.C:
			orders = snap
		case snap := <-p.lines.C:
			lines = snap
		case snap := <-p.cartItems.C:
			cartItems = snap
		case <-p.done:
			return
		}
		v := ComputeGuestView(p.tableID, menu, cartItems, orders, lines, p.taxRate)
		p.mu.Lock()
		p.view = v
		p.mu.Unlock()
		latest(p.updates, v)
	}
}

func (p *GuestProjector) Snapshot() GuestView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}

func (p *GuestProjector) Updates() <-chan GuestView { return p.updates }

func (p *GuestProjector) Close() {
	p.once.Do(func() {
		close(p.done)
		p.menu.Close()
		p.orders.Close()
		p.lines.Close()
		p.cartItems.Close()
	})
}

// QueryGuestView runs the projector's queries once, for plain HTTP reads
// that do not need a live stream.
func QueryGuestView(db *gorm.DB, tableID uint, taxRate float64) (GuestView, error) {
	var (
		menu      []entity.MenuItem
		orders    []entity.Order
		lines     []entity.OrderLine
		cartItems []entity.CartItem
	)
	if err := db.Order("created_at DESC").Find(&menu).Error; err != nil {
		return GuestView{}, err
	}
	if err := db.Where("table_id = ?", tableID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return GuestView{}, err
	}
	if err := db.Find(&lines).Error; err != nil {
		return GuestView{}, err
	}
	if err := db.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.table_id = ?", tableID).Find(&cartItems).Error; err != nil {
		return GuestView{}, err
	}
	return ComputeGuestView(tableID, menu, cartItems, orders, lines, taxRate), nil
}
