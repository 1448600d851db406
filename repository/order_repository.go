package repository

import (
	"pulsebite/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListByTable returns a table's orders newest first; the first row is the
// table's active order.
func (r *OrderRepository) ListByTable(tableID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("table_id = ?", tableID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListByStatuses is the kitchen rail query: open orders, oldest first.
func (r *OrderRepository) ListByStatuses(statuses []entity.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("status IN ?", statuses).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves the status only if the stored value still equals
// from. affected == false means another writer got there first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateStatus is the unguarded override used for operator corrections.
func (r *OrderRepository) UpdateStatus(orderID uint, to entity.OrderStatus) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
}

// ---------------- Order lines ----------------

func (r *OrderRepository) CreateLine(tx *gorm.DB, line *entity.OrderLine) error {
	return tx.Create(line).Error
}

func (r *OrderRepository) LinesByOrder(orderID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Where("order_id = ?", orderID).Find(&lines).Error
	return lines, err
}

// DeleteLinesByOrder is called explicitly when an order is removed; the
// store never cascades this on its own.
func (r *OrderRepository) DeleteLinesByOrder(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderLine{}).Error
}
