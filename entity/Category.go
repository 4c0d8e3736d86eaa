package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Title string `gorm:"uniqueIndex;not null" json:"title"`

	// preload only when the catalog tree is needed
	MenuItems []MenuItem `json:"-"`
}
