package repository

import (
	"github.com/arminsheibak/Online-Food-API/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// MenuItemFilter mirrors the list query params: category and price window,
// free-text search on title, price ordering, pagination.
type MenuItemFilter struct {
	CategoryID *uint
	PriceGT    *decimal.Decimal
	PriceLT    *decimal.Decimal
	Search     string
	Ordering   string // "price" or "-price"
	Page       int
	Limit      int
}

func (r *MenuRepository) List(f MenuItemFilter) ([]entity.MenuItem, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 20
	}

	apply := func(q *gorm.DB) *gorm.DB {
		if f.CategoryID != nil {
			q = q.Where("category_id = ?", *f.CategoryID)
		}
		if f.PriceGT != nil {
			q = q.Where("price > ?", *f.PriceGT)
		}
		if f.PriceLT != nil {
			q = q.Where("price < ?", *f.PriceLT)
		}
		if f.Search != "" {
			q = q.Where("title LIKE ?", "%"+f.Search+"%")
		}
		return q
	}

	var total int64
	if err := apply(r.DB.Model(&entity.MenuItem{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := apply(r.DB.Model(&entity.MenuItem{}))
	switch f.Ordering {
	case "price":
		q = q.Order("price ASC")
	case "-price":
		q = q.Order("price DESC")
	default:
		q = q.Order("category_id ASC, id ASC")
	}

	var items []entity.MenuItem
	err := q.Limit(f.Limit).Offset((f.Page - 1) * f.Limit).Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBasics loads just enough for pricing (id, price).
func (r *MenuRepository) GetBasics(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, price, title").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) CategoryExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// OrderItemCount is the referenced-by guard for menu item deletion.
func (r *MenuRepository) OrderItemCount(menuItemID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).Where("menu_item_id = ?", menuItemID).Count(&cnt).Error
	return cnt, err
}
