package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when customer detail is needed

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Delivered bool `gorm:"not null;default:false" json:"delivered"`

	// Frozen at creation time; never recomputed from the catalog.
	TotalPrice decimal.Decimal `gorm:"not null;type:decimal(8,2)" json:"totalPrice"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
