package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title       string          `gorm:"not null" json:"title"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(6,2)" json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for detail views

	OrderItems []OrderItem `json:"-"`
}
