package repository

import (
	"github.com/arminsheibak/Online-Food-API/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("title ASC").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) Get(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) Save(c *entity.Category) error {
	return r.DB.Save(c).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// TitleTaken checks for another category with the same title.
func (r *CategoryRepository) TitleTaken(title string, excludeID uint) (bool, error) {
	var cnt int64
	q := r.DB.Model(&entity.Category{}).Where("title = ?", title)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// MenuItemCount is the referenced-by guard for category deletion.
func (r *CategoryRepository) MenuItemCount(categoryID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&cnt).Error
	return cnt, err
}
