package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem rows are hard-deleted with their cart, so no gorm.Model here:
// a soft-delete column would keep dead rows inside the (cart, menu_item)
// unique index and block re-adding an item after removal.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	CartID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_menu_item" json:"cartId"`
	Cart   Cart      `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_menu_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `gorm:"not null" json:"quantity"`
}
