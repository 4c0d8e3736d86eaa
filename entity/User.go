package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"-"`
	Orders  []Order  `json:"-"`
}
