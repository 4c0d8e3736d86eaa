package services

import "errors"

// Validation errors (client-correctable → 400).
var (
	ErrNoCart            = errors.New("no cart with the given id")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrQuantityTooSmall  = errors.New("quantity must be at least 1")
	ErrDuplicateCategory = errors.New("category title already exists")
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInvalidRole       = errors.New("unknown role")
	ErrNotDeliveryCrew   = errors.New("user is not delivery crew")
)

// Integrity errors (referenced rows → 405).
var (
	ErrCategoryInUse = errors.New("category can not be deleted: in use")
	ErrMenuItemInUse = errors.New("menu item can not be deleted: in use")
)

// Authorization / visibility.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrForbidden       = errors.New("forbidden")
)
