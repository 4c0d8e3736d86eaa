package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only for the menu title

	Quantity int `gorm:"not null" json:"quantity"`

	// Snapshot of the menu item's price at order time. Later catalog price
	// changes must not touch this column.
	Price decimal.Decimal `gorm:"not null;type:decimal(6,2)" json:"price"`
}
