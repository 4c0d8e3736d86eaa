package entity

import (
	"time"
)

const (
	RoleCustomer     = "customer"
	RoleDeliveryCrew = "delivery_crew"
	RoleAdmin        = "admin"
)

// ValidRole reports whether a role string is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleDeliveryCrew, RoleAdmin:
		return true
	}
	return false
}

// Profile is 1:1 with User; the user id is the primary key.
type Profile struct {
	UserID uint `gorm:"primaryKey" json:"userId"`
	User   User `json:"-"`

	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birthDate"`

	// Mutable only through the admin path.
	Role string `gorm:"not null;default:customer" json:"role"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
