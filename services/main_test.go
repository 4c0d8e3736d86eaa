package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// newTestDB opens a private in-memory database per test. The named DSN with
// shared cache keeps gorm's connection pool on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Profile{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
	)
}

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repository.NewCategoryRepository(db), repository.NewMenuRepository(db))
}

func seedCategory(t *testing.T, db *gorm.DB, title string) *entity.Category {
	t.Helper()
	c := entity.Category{Title: title}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedMenuItem(t *testing.T, db *gorm.DB, categoryID uint, title, price string) *entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{
		Title:      title,
		CategoryID: categoryID,
		Price:      decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	p := entity.Profile{UserID: u.ID, FirstName: "Test", LastName: "User", Role: role}
	require.NoError(t, db.Create(&p).Error)
	return &u
}

func requirePrice(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"want %s, got %s", want, got.String())
}
