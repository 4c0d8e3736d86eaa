package services

import (
	"errors"

	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

func (s *CartService) Create() (*entity.Cart, error) {
	return s.CartRepo.Create()
}

// Get returns the cart with its lines and the live total: the sum of
// current menu price × quantity, re-derived on every read.
func (s *CartService) Get(id uuid.UUID) (*entity.Cart, decimal.Decimal, error) {
	c, err := s.CartRepo.GetWithItems(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Zero, ErrNoCart
		}
		return nil, decimal.Zero, err
	}
	return c, TotalPrice(c), nil
}

// TotalPrice computes the live cart total; an empty cart totals zero.
func TotalPrice(c *entity.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.MenuItem.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// AddItem merges into an existing (cart, menu_item) line or creates one.
// Repeated adds accumulate quantity; no duplicate rows.
func (s *CartService) AddItem(cartID uuid.UUID, in *AddItemIn) error {
	if in.Quantity < 1 {
		return ErrQuantityTooSmall
	}
	ok, err := s.CartRepo.Exists(cartID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoCart
	}
	if _, err := s.MenuRepo.GetBasics(in.MenuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, cartID, in.MenuItemID, in.Quantity)
	})
}

func (s *CartService) UpdateItemQty(cartID uuid.UUID, itemID uint, qty int) error {
	if qty < 1 {
		return ErrQuantityTooSmall
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.UpdateItemQty(tx, cartID, itemID, qty)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

func (s *CartService) RemoveItem(cartID uuid.UUID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.RemoveItem(tx, cartID, itemID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

func (s *CartService) Delete(id uuid.UUID) error {
	ok, err := s.CartRepo.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoCart
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteCart(tx, id)
	})
}
