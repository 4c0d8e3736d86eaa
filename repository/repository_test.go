package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/arminsheibak/Online-Food-API/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
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

func TestUpsertItemMergesLine(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	cat := entity.Category{Title: "chinese"}
	require.NoError(t, db.Create(&cat).Error)
	m := entity.MenuItem{Title: "chicken", CategoryID: cat.ID, Price: decimal.RequireFromString("12.34")}
	require.NoError(t, db.Create(&m).Error)

	cart, err := repo.Create()
	require.NoError(t, err)

	require.NoError(t, repo.UpsertItem(db, cart.ID, m.ID, 2))
	require.NoError(t, repo.UpsertItem(db, cart.ID, m.ID, 3))

	var items []entity.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestUpdateItemQtyScopedToCart(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	cat := entity.Category{Title: "chinese"}
	require.NoError(t, db.Create(&cat).Error)
	m := entity.MenuItem{Title: "chicken", CategoryID: cat.ID, Price: decimal.RequireFromString("12.34")}
	require.NoError(t, db.Create(&m).Error)

	mine, err := repo.Create()
	require.NoError(t, err)
	other, err := repo.Create()
	require.NoError(t, err)
	require.NoError(t, repo.UpsertItem(db, mine.ID, m.ID, 2))

	var item entity.CartItem
	require.NoError(t, db.Where("cart_id = ?", mine.ID).First(&item).Error)

	// A different cart id must not be able to touch the line.
	n, err := repo.UpdateItemQty(db, other.ID, item.ID, 9)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = repo.UpdateItemQty(db, mine.ID, item.ID, 9)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestMarkDeliveredGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	u := entity.User{Email: "u@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	o := entity.Order{UserID: u.ID, TotalPrice: decimal.RequireFromString("10.00")}
	require.NoError(t, db.Create(&o).Error)

	ok, err := repo.MarkDelivered(db, o.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// The guarded update fires exactly once.
	ok, err = repo.MarkDelivered(db, o.ID)
	require.NoError(t, err)
	require.False(t, ok)

	got, err := repo.Get(o.ID)
	require.NoError(t, err)
	require.True(t, got.Delivered)
}
