package services

import (
	"errors"
	"strings"

	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService struct {
	CategoryRepo *repository.CategoryRepository
	MenuRepo     *repository.MenuRepository
}

func NewCatalogService(cr *repository.CategoryRepository, mr *repository.MenuRepository) *CatalogService {
	return &CatalogService{CategoryRepo: cr, MenuRepo: mr}
}

// ----- Categories -----

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.CategoryRepo.List()
}

func (s *CatalogService) GetCategory(id uint) (*entity.Category, error) {
	c, err := s.CategoryRepo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	return c, err
}

func (s *CatalogService) CreateCategory(title string) (*entity.Category, error) {
	title = strings.TrimSpace(title)
	taken, err := s.CategoryRepo.TitleTaken(title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateCategory
	}
	c := entity.Category{Title: title}
	if err := s.CategoryRepo.Create(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CatalogService) UpdateCategory(id uint, title string) (*entity.Category, error) {
	c, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	taken, err := s.CategoryRepo.TitleTaken(title, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateCategory
	}
	c.Title = title
	if err := s.CategoryRepo.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory refuses while any menu item still references the category.
func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	cnt, err := s.CategoryRepo.MenuItemCount(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrCategoryInUse
	}
	return s.CategoryRepo.Delete(id)
}

// ----- Menu items -----

type MenuItemIn struct {
	Title       string          `json:"title" binding:"required"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	// ImageBase64, when present, is decoded and stored under uploads/.
	ImageBase64 string `json:"imageBase64"`
}

func (s *CatalogService) ListMenuItems(f repository.MenuItemFilter) ([]entity.MenuItem, int64, error) {
	return s.MenuRepo.List(f)
}

func (s *CatalogService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.MenuRepo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return m, err
}

func (s *CatalogService) CreateMenuItem(in *MenuItemIn, imagePath string) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	ok, err := s.MenuRepo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}
	m := entity.MenuItem{
		Title:       in.Title,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Description: in.Description,
		Image:       imagePath,
	}
	if err := s.MenuRepo.Create(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *CatalogService) UpdateMenuItem(id uint, in *MenuItemIn, imagePath string) (*entity.MenuItem, error) {
	m, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	ok, err := s.MenuRepo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}
	m.Title = in.Title
	m.CategoryID = in.CategoryID
	m.Price = in.Price
	m.Description = in.Description
	if imagePath != "" {
		m.Image = imagePath
	}
	if err := s.MenuRepo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMenuItem refuses while any order item still references the row:
// order history keeps pointing at the menu item it was priced from.
func (s *CatalogService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	cnt, err := s.MenuRepo.OrderItemCount(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrMenuItemInUse
	}
	return s.MenuRepo.Delete(id)
}
