package services

import (
	"sort"
	"strings"

	"pulsebite/entity"
)

// Derived views. Everything in this file is a pure computation over
// collection snapshots — nothing here is persisted, only recomputed.

// DefaultSection buckets menu items with no category on the guest menu.
const DefaultSection = "Chef's Picks"

// uncategorised is the admin-side bucket for blank categories.
const uncategorised = "Uncategorised"

// ---------------- Operations (admin) ----------------

type CategoryCount struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}

type TableOrders struct {
	TableID   uint           `json:"tableId"`
	TableName string         `json:"tableName"`
	Orders    []entity.Order `json:"orders"` // most recent first
}

type AdminView struct {
	Tables      []entity.Table    `json:"tables"`
	Menu        []entity.MenuItem `json:"menu"`
	Categories  []CategoryCount   `json:"categories"`
	TableOrders []TableOrders     `json:"tableOrders"`
}

// ComputeAdminView groups orders per table (orders are expected newest
// first and keep that order inside each group) and counts menu items per
// category. Orders whose table is gone are dropped from the grouping;
// orphaned category names still get their own bucket.
func ComputeAdminView(tables []entity.Table, categories []entity.Category, menu []entity.MenuItem, orders []entity.Order) AdminView {
	byTable := make(map[uint][]entity.Order)
	for _, o := range orders {
		byTable[o.TableID] = append(byTable[o.TableID], o)
	}

	groups := make([]TableOrders, 0, len(tables))
	for _, t := range tables {
		groups = append(groups, TableOrders{
			TableID:   t.ID,
			TableName: t.Name,
			Orders:    byTable[t.ID],
		})
	}

	counts := make(map[string]int)
	for _, item := range menu {
		key := strings.TrimSpace(item.Category)
		if key == "" {
			key = uncategorised
		}
		counts[key]++
	}
	declared := make(map[string]bool, len(categories))
	catCounts := make([]CategoryCount, 0, len(categories)+1)
	for _, c := range categories {
		declared[c.Name] = true
		catCounts = append(catCounts, CategoryCount{Name: c.Name, Items: counts[c.Name]})
	}
	var orphans []string
	for name := range counts {
		if !declared[name] && name != uncategorised {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)
	for _, name := range orphans {
		catCounts = append(catCounts, CategoryCount{Name: name, Items: counts[name]})
	}
	if counts[uncategorised] > 0 {
		catCounts = append(catCounts, CategoryCount{Name: uncategorised, Items: counts[uncategorised]})
	}

	return AdminView{
		Tables:      tables,
		Menu:        menu,
		Categories:  catCounts,
		TableOrders: groups,
	}
}

// ---------------- Kitchen ----------------

type TicketLine struct {
	LineID     uint   `json:"lineId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name,omitempty"` // empty when the menu item is gone
	Quantity   int    `json:"quantity"`
}

// Ticket is the kitchen-facing shape of one open order.
type Ticket struct {
	Order     entity.Order `json:"order"`
	TableName string       `json:"tableName,omitempty"`
	Lines     []TicketLine `json:"lines"`
	Priority  Priority     `json:"priority"`
	// a freshly placed order may show up before its line snapshot does
	Syncing bool `json:"syncing"`
}

// ComputeKitchenTickets pairs each open order with its resolved lines,
// priority and table name. orders are expected pre-filtered to the active
// statuses, oldest first.
func ComputeKitchenTickets(orders []entity.Order, lines []entity.OrderLine, menu []entity.MenuItem, tables []entity.Table) []Ticket {
	menuByID := MenuByID(menu)
	tableNames := make(map[uint]string, len(tables))
	for _, t := range tables {
		tableNames[t.ID] = t.Name
	}
	byOrder := make(map[uint][]entity.OrderLine)
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}

	tickets := make([]Ticket, 0, len(orders))
	for _, o := range orders {
		orderLines := byOrder[o.ID]
		tls := make([]TicketLine, 0, len(orderLines))
		for _, l := range orderLines {
			tl := TicketLine{LineID: l.ID, MenuItemID: l.MenuItemID, Quantity: l.Quantity}
			if item, ok := menuByID[l.MenuItemID]; ok {
				tl.Name = item.Name
			}
			tls = append(tls, tl)
		}
		tickets = append(tickets, Ticket{
			Order:     o,
			TableName: tableNames[o.TableID],
			Lines:     tls,
			Priority:  ResolvePriority(orderLines, menuByID),
			Syncing:   len(orderLines) == 0,
		})
	}
	return tickets
}

// FilterTickets keeps only the given priority tier. An empty tier means
// all tickets.
func FilterTickets(tickets []Ticket, tier Priority) []Ticket {
	if tier == "" {
		return tickets
	}
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Priority == tier {
			out = append(out, t)
		}
	}
	return out
}

// ---------------- Guest ----------------

type MenuSection struct {
	Title string            `json:"title"`
	Items []entity.MenuItem `json:"items"`
}

type CartLine struct {
	ItemID     uint    `json:"itemId"`
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
}

type ActiveOrder struct {
	Order entity.Order `json:"order"`
	Lines []TicketLine `json:"lines"`
	// index of the current status within Pending→Cooking→Ready→Delivered
	StatusIndex int  `json:"statusIndex"`
	Syncing     bool `json:"syncing"`
}

type GuestView struct {
	TableID     uint          `json:"tableId"`
	Sections    []MenuSection `json:"sections"`
	Cart        []CartLine    `json:"cart"`
	Totals      Totals        `json:"totals"`
	ActiveOrder *ActiveOrder  `json:"activeOrder,omitempty"`
}

// ComputeGuestView builds the menu grouped by category (blank categories
// fall into the Chef's Picks bucket, section order follows first
// appearance), the cart priced live, and the table's most recent order
// with its progress. orders are expected newest first, already filtered to
// the table; lines may span all orders.
func ComputeGuestView(tableID uint, menu []entity.MenuItem, cartItems []entity.CartItem, orders []entity.Order, lines []entity.OrderLine, taxRate float64) GuestView {
	menuByID := MenuByID(menu)

	var sectionOrder []string
	grouped := make(map[string][]entity.MenuItem)
	for _, item := range menu {
		key := strings.TrimSpace(item.Category)
		if key == "" {
			key = DefaultSection
		}
		if _, seen := grouped[key]; !seen {
			sectionOrder = append(sectionOrder, key)
		}
		grouped[key] = append(grouped[key], item)
	}
	sections := make([]MenuSection, 0, len(sectionOrder))
	for _, title := range sectionOrder {
		sections = append(sections, MenuSection{Title: title, Items: grouped[title]})
	}

	cart := make([]CartLine, 0, len(cartItems))
	priced := make([]PricedItem, 0, len(cartItems))
	for _, it := range cartItems {
		priced = append(priced, PricedItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
		item, ok := menuByID[it.MenuItemID]
		if !ok {
			// menu item deleted since it was added; drop it from the
			// rendered cart the same way it is dropped from the totals
			continue
		}
		cart = append(cart, CartLine{
			ItemID:     it.ID,
			MenuItemID: it.MenuItemID,
			Name:       item.Name,
			Quantity:   it.Quantity,
			UnitPrice:  item.Price,
			LineTotal:  item.Price * float64(it.Quantity),
		})
	}

	view := GuestView{
		TableID:  tableID,
		Sections: sections,
		Cart:     cart,
		Totals:   PriceItems(priced, menuByID, taxRate),
	}

	if len(orders) > 0 {
		active := orders[0]
		var tls []TicketLine
		for _, l := range lines {
			if l.OrderID != active.ID {
				continue
			}
			tl := TicketLine{LineID: l.ID, MenuItemID: l.MenuItemID, Quantity: l.Quantity}
			if item, ok := menuByID[l.MenuItemID]; ok {
				tl.Name = item.Name
			}
			tls = append(tls, tl)
		}
		view.ActiveOrder = &ActiveOrder{
			Order:       active,
			Lines:       tls,
			StatusIndex: active.Status.Index(),
			Syncing:     len(tls) == 0,
		}
	}
	return view
}
