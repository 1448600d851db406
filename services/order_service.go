package services

import (
	"pulsebite/entity"
	"pulsebite/feed"
	"pulsebite/repository"

	"gorm.io/gorm"
)

// OrderService is the write path that turns a guest's cart into an order
// plus its lines.
type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	CartRepo  *repository.CartRepository
	Feed      *feed.Feed
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, tr *repository.TableRepository, cr *repository.CartRepository, f *feed.Feed) *OrderService {
	return &OrderService{DB: db, Repo: repo, TableRepo: tr, CartRepo: cr, Feed: f}
}

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

type PlaceOrderIn struct {
	Items []OrderItemIn `json:"items"`
	Note  string        `json:"note"`
}

// Place creates the order with status Pending and one line per item. The
// order and its lines land in a single transaction so subscribers never
// observe a half-written order; the kitchen and guest views still render a
// zero-line order as "syncing" rather than failing, since line snapshots
// may arrive on a different subscription than the order itself.
func (s *OrderService) Place(tableID uint, in *PlaceOrderIn) (uint, error) {
	if len(in.Items) == 0 {
		return 0, ErrEmptyOrder
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return 0, ErrBadQuantity
		}
	}
	ok, err := s.TableRepo.Exists(tableID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrTableNotFound
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			TableID: tableID,
			Status:  entity.StatusPending,
			Note:    in.Note,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range in.Items {
			line := entity.OrderLine{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
			}
			if err := s.Repo.CreateLine(tx, &line); err != nil {
				return err
			}
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.Feed.Notify(entity.CollectionOrders, entity.CollectionOrderLines)
	return orderID, nil
}

// PlaceFromCart checks out the table's cart through Place semantics and
// clears the cart in the same transaction.
func (s *OrderService) PlaceFromCart(tableID uint, note string) (uint, error) {
	cart, err := s.CartRepo.GetWithItems(tableID)
	if err != nil {
		return 0, err
	}
	if len(cart.Items) == 0 {
		return 0, ErrEmptyOrder
	}
	ok, err := s.TableRepo.Exists(tableID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrTableNotFound
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			TableID: tableID,
			Status:  entity.StatusPending,
			Note:    note,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range cart.Items {
			line := entity.OrderLine{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
			}
			if err := s.Repo.CreateLine(tx, &line); err != nil {
				return err
			}
		}
		if err := s.CartRepo.Clear(tx, tableID); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.Feed.Notify(entity.CollectionOrders, entity.CollectionOrderLines, entity.CollectionCartItems)
	return orderID, nil
}

// Delete removes an order and, explicitly, its lines — the store does not
// cascade. Lines left behind by older deletions are tolerated by readers.
func (s *OrderService) Delete(orderID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteLinesByOrder(tx, orderID); err != nil {
			return err
		}
		return s.Repo.DeleteOrder(tx, orderID)
	})
	if err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionOrders, entity.CollectionOrderLines)
	return nil
}
