package entity

// Collection names as the change feed sees them (= gorm table names).
const (
	CollectionTables     = "tables"
	CollectionCategories = "categories"
	CollectionMenuItems  = "menu_items"
	CollectionOrders     = "orders"
	CollectionOrderLines = "order_lines"
	CollectionCarts      = "carts"
	CollectionCartItems  = "cart_items"
)
