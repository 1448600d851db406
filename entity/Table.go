package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Name     string `json:"name"`
	QRTarget string `json:"qrTarget"` // deterministic path: /table/<id>

	// QR code PNG, generated once at creation time
	QRImage   []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"`

	Orders []Order `json:"-"` // preload only when needed
	Cart   *Cart   `json:"-"`
}
