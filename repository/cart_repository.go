package repository

import (
	"errors"

	"pulsebite/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetWithItems returns the table's cart, or an empty unsaved cart so the
// guest view can render without an error.
func (r *CartRepository) GetWithItems(tableID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("table_id = ?", tableID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{TableID: tableID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreate(tableID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("table_id = ?", tableID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{TableID: tableID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges same-item lines instead of duplicating them.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, menuItemID uint, quantity int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += quantity
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.CartItem{
		CartID:     cartID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
	}).Error
}

func (r *CartRepository) UpdateQuantity(tx *gorm.DB, tableID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return r.RemoveItem(tx, tableID, itemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET quantity = ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE table_id = ?)
	`, quantity, itemID, tableID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, tableID, itemID uint) error {
	return tx.Unscoped().
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE table_id = ?)", itemID, tableID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, tableID uint) error {
	var c entity.Cart
	if err := tx.Where("table_id = ?", tableID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Unscoped().Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
