package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arminsheibak/Online-Food-API/configs"
	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

type testAPI struct {
	db  *gorm.DB
	r   *gin.Engine
	cfg *configs.Config
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Profile{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return &testAPI{db: db, r: r, cfg: cfg}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func (a *testAPI) seedUser(t *testing.T, email, role string) (uint, string) {
	t.Helper()
	u := entity.User{Email: email, Password: "x"}
	require.NoError(t, a.db.Create(&u).Error)
	p := entity.Profile{UserID: u.ID, FirstName: "Test", LastName: "User", Role: role}
	require.NoError(t, a.db.Create(&p).Error)
	token, err := utils.GenerateToken(u.ID, role, a.cfg.JWTSecret, a.cfg.JWTTTL)
	require.NoError(t, err)
	return u.ID, token
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Data
}

func TestCartToOrderFlow(t *testing.T) {
	api := newTestAPI(t)
	_, customerToken := api.seedUser(t, "customer@example.com", entity.RoleCustomer)

	cat := entity.Category{Title: "italian"}
	require.NoError(t, api.db.Create(&cat).Error)
	pasta := entity.MenuItem{Title: "pasta", CategoryID: cat.ID, Price: decimal.RequireFromString("10.00")}
	soup := entity.MenuItem{Title: "soup", CategoryID: cat.ID, Price: decimal.RequireFromString("5.50")}
	require.NoError(t, api.db.Create(&pasta).Error)
	require.NoError(t, api.db.Create(&soup).Error)

	// Anonymous cart creation.
	w := api.do(t, http.MethodPost, "/carts", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cartID := decodeData(t, w)["id"].(string)
	require.NotEmpty(t, cartID)

	// Add items; the duplicate add merges.
	w = api.do(t, http.MethodPost, "/carts/"+cartID+"/items", "", gin.H{"menuItemId": pasta.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	w = api.do(t, http.MethodPost, "/carts/"+cartID+"/items", "", gin.H{"menuItemId": pasta.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	w = api.do(t, http.MethodPost, "/carts/"+cartID+"/items", "", gin.H{"menuItemId": soup.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodGet, "/carts/"+cartID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	require.Equal(t, "25.5", data["totalPrice"])
	items := data["cart"].(map[string]any)["items"].([]any)
	require.Len(t, items, 2)

	// Conversion requires a login.
	w = api.do(t, http.MethodPost, "/orders", "", gin.H{"cartId": cartID})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, http.MethodPost, "/orders", customerToken, gin.H{"cartId": cartID})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decodeData(t, w)
	require.Equal(t, "25.5", order["totalPrice"])
	require.Len(t, order["items"].([]any), 2)

	// The cart is gone; a second conversion reports it.
	w = api.do(t, http.MethodGet, "/carts/"+cartID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = api.do(t, http.MethodPost, "/orders", customerToken, gin.H{"cartId": cartID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "no cart with the given id")
}

func TestCatalogWriteRequiresAdmin(t *testing.T) {
	api := newTestAPI(t)
	_, customerToken := api.seedUser(t, "customer@example.com", entity.RoleCustomer)
	_, adminToken := api.seedUser(t, "admin@example.com", entity.RoleAdmin)

	w := api.do(t, http.MethodPost, "/categories", customerToken, gin.H{"title": "greek"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodPost, "/categories", adminToken, gin.H{"title": "greek"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Public read without a token.
	w = api.do(t, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteReferencedCategoryIs405(t *testing.T) {
	api := newTestAPI(t)
	_, adminToken := api.seedUser(t, "admin@example.com", entity.RoleAdmin)

	cat := entity.Category{Title: "italian"}
	require.NoError(t, api.db.Create(&cat).Error)
	pasta := entity.MenuItem{Title: "pasta", CategoryID: cat.ID, Price: decimal.RequireFromString("10.00")}
	require.NoError(t, api.db.Create(&pasta).Error)

	w := api.do(t, http.MethodDelete, fmt.Sprintf("/categories/%d", cat.ID), adminToken, nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	require.NoError(t, api.db.Delete(&pasta).Error)
	w = api.do(t, http.MethodDelete, fmt.Sprintf("/categories/%d", cat.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestOrderPatchGatedByRole(t *testing.T) {
	api := newTestAPI(t)
	customerID, customerToken := api.seedUser(t, "customer@example.com", entity.RoleCustomer)
	crewID, crewToken := api.seedUser(t, "crew@example.com", entity.RoleDeliveryCrew)
	_, adminToken := api.seedUser(t, "admin@example.com", entity.RoleAdmin)

	o := entity.Order{UserID: customerID, TotalPrice: decimal.RequireFromString("10.00")}
	require.NoError(t, api.db.Create(&o).Error)
	path := fmt.Sprintf("/orders/%d", o.ID)

	// Customers cannot reach PATCH at all.
	w := api.do(t, http.MethodPatch, path, customerToken, gin.H{"delivered": true})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Admin assigns the crew, crew delivers.
	w = api.do(t, http.MethodPatch, path, adminToken, gin.H{"deliveryCrewId": crewID})
	require.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodPatch, path, crewToken, gin.H{"delivered": true})
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.Order
	require.NoError(t, api.db.First(&got, o.ID).Error)
	require.True(t, got.Delivered)

	// Crew cannot assign.
	w = api.do(t, http.MethodPatch, path, crewToken, gin.H{"deliveryCrewId": crewID})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Delete is admin-only.
	w = api.do(t, http.MethodDelete, path, crewToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = api.do(t, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSelfProfileCannotSetRole(t *testing.T) {
	api := newTestAPI(t)
	userID, token := api.seedUser(t, "user@example.com", entity.RoleCustomer)

	w := api.do(t, http.MethodPut, "/profiles/me", token,
		gin.H{"firstName": "Eve", "lastName": "Adams", "role": "admin"})
	require.Equal(t, http.StatusOK, w.Code)

	var p entity.Profile
	require.NoError(t, api.db.First(&p, "user_id = ?", userID).Error)
	require.Equal(t, entity.RoleCustomer, p.Role)

	// The self view never exposes the role either.
	w = api.do(t, http.MethodGet, "/profiles/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "role")
}
