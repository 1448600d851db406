package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TableID uint  `json:"tableId"`
	Table   Table `json:"-"` // preload only when needed

	Status OrderStatus `json:"status" gorm:"type:text"`
	Note   string      `json:"note,omitempty"`

	// deleted only together with the order, never cascaded by the store
	Lines []OrderLine `json:"-"`
}
