package repository

import (
	"errors"

	"github.com/arminsheibak/Online-Food-API/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) Create() (*entity.Cart, error) {
	c := entity.Cart{}
	if err := r.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetWithItems(id uuid.UUID) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) Exists(id uuid.UUID) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Cart{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// UpsertItem merges by (cart, menu_item): an existing line accumulates the
// quantity, otherwise a new line is created.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uuid.UUID, menuItemID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.CartItem{CartID: cartID, MenuItemID: menuItemID, Quantity: qty}).Error
}

// UpdateItemQty sets (not adds) the quantity of one line owned by the cart.
func (r *CartRepository) UpdateItemQty(tx *gorm.DB, cartID uuid.UUID, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID uuid.UUID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteCart removes the cart and its items in one go. sqlite does not
// enforce the cascade constraint without the FK pragma, so items go first.
func (r *CartRepository) DeleteCart(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("cart_id = ?", id).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Cart{}, "id = ?", id).Error
}
