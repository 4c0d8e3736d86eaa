package controllers

import (
	"errors"
	"strconv"

	"github.com/arminsheibak/Online-Food-API/pkg/resp"
	"github.com/arminsheibak/Online-Food-API/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CatalogService }

func NewCategoryController(s *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: s}
}

type categoryIn struct {
	Title string `json:"title" binding:"required"`
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	out, err := h.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /categories/:id
func (h *CategoryController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cat, err := h.Svc.GetCategory(id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// POST /categories (admin)
func (h *CategoryController) Create(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(req.Title)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateCategory) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT/PATCH /categories/:id (admin)
func (h *CategoryController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.UpdateCategory(id, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrDuplicateCategory):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id (admin) — 405 while menu items reference it.
func (h *CategoryController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCategory(id); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrCategoryInUse):
			resp.MethodNotAllowed(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
