package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arminsheibak/Online-Food-API/pkg/resp"
	"github.com/arminsheibak/Online-Food-API/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

func cartID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid cart id")
		return uuid.Nil, false
	}
	return id, true
}

// POST /carts — the returned id is the client's only handle on the cart.
func (h *CartController) Create(c *gin.Context) {
	cart, err := h.Svc.Create()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cart)
}

// GET /carts/:id — items plus the live total.
func (h *CartController) Get(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}
	cart, total, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNoCart) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "totalPrice": total})
}

// DELETE /carts/:id
func (h *CartController) Delete(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNoCart) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /carts/:id/items — merging add per the (cart, menu_item) line rule.
func (h *CartController) AddItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddItem(id, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrNoCart):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrMenuItemNotFound), errors.Is(err, services.ErrQuantityTooSmall):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// PATCH /carts/:id/items/:itemId — sets the quantity.
func (h *CartController) UpdateItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateItemQty(id, uint(itemID), req.Quantity); err != nil {
		switch {
		case errors.Is(err, services.ErrCartItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrQuantityTooSmall):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /carts/:id/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.RemoveItem(id, uint(itemID)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
