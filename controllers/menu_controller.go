package controllers

import (
	"errors"
	"strconv"

	"github.com/arminsheibak/Online-Food-API/pkg/resp"
	"github.com/arminsheibak/Online-Food-API/repository"
	"github.com/arminsheibak/Online-Food-API/services"
	"github.com/arminsheibak/Online-Food-API/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items?category_id=&price_gt=&price_lt=&search=&ordering=&page=&limit=
func (h *MenuController) List(c *gin.Context) {
	var f repository.MenuItemFilter

	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid category_id")
			return
		}
		cid := uint(id)
		f.CategoryID = &cid
	}
	if v := c.Query("price_gt"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			resp.BadRequest(c, "invalid price_gt")
			return
		}
		f.PriceGT = &d
	}
	if v := c.Query("price_lt"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			resp.BadRequest(c, "invalid price_lt")
			return
		}
		f.PriceLT = &d
	}
	f.Search = c.Query("search")
	f.Ordering = c.Query("ordering")
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.Svc.ListMenuItems(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": f.Page, "limit": f.Limit})
}

// GET /menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.Svc.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

func (h *MenuController) saveImage(c *gin.Context, b64 string) (string, bool) {
	if b64 == "" {
		return "", true
	}
	path, err := utils.SaveBase64Image(b64, "uploads/menu")
	if err != nil {
		resp.BadRequest(c, "invalid image payload")
		return "", false
	}
	return path, true
}

// POST /menu-items (admin)
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	imagePath, ok := h.saveImage(c, req.ImageBase64)
	if !ok {
		return
	}
	m, err := h.Svc.CreateMenuItem(&req, imagePath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound), errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, m)
}

// PUT/PATCH /menu-items/:id (admin)
func (h *MenuController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	imagePath, ok := h.saveImage(c, req.ImageBase64)
	if !ok {
		return
	}
	m, err := h.Svc.UpdateMenuItem(id, &req, imagePath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrCategoryNotFound), errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, m)
}

// DELETE /menu-items/:id (admin) — 405 while order items reference it.
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMenuItem(id); err != nil {
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrMenuItemInUse):
			resp.MethodNotAllowed(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
