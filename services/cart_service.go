package services

import (
	"pulsebite/entity"
	"pulsebite/feed"
	"pulsebite/repository"

	"gorm.io/gorm"
)

// CartService manages the shared per-table guest cart. Cart lines store no
// price; totals are resolved against the live menu on every read.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Feed     *feed.Feed
	TaxRate  float64
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, f *feed.Feed, taxRate float64) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, Feed: f, TaxRate: taxRate}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// Get returns the cart with totals computed fresh against current prices.
func (s *CartService) Get(tableID uint) (*entity.Cart, Totals, error) {
	c, err := s.CartRepo.GetWithItems(tableID)
	if err != nil {
		return nil, Totals{}, err
	}
	menu, err := s.MenuRepo.List()
	if err != nil {
		return nil, Totals{}, err
	}
	items := make([]PricedItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, PricedItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}
	return c, PriceItems(items, MenuByID(menu), s.TaxRate), nil
}

func (s *CartService) Add(tableID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	// adding requires a live menu item; dangling refs are only tolerated
	// on already-written lines
	if _, err := s.MenuRepo.Get(in.MenuItemID); err != nil {
		return err
	}
	c, err := s.CartRepo.GetOrCreate(tableID)
	if err != nil {
		return err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, in.MenuItemID, in.Quantity)
	})
	if err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionCarts, entity.CollectionCartItems)
	return nil
}

func (s *CartService) UpdateQuantity(tableID, itemID uint, quantity int) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQuantity(tx, tableID, itemID, quantity)
	})
	if err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionCartItems)
	return nil
}

func (s *CartService) RemoveItem(tableID, itemID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, tableID, itemID)
	})
	if err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionCartItems)
	return nil
}

func (s *CartService) Clear(tableID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, tableID)
	})
	if err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionCartItems)
	return nil
}
