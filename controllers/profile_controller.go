package controllers

import (
	"errors"
	"strconv"

	"github.com/arminsheibak/Online-Food-API/pkg/resp"
	"github.com/arminsheibak/Online-Food-API/services"
	"github.com/arminsheibak/Online-Food-API/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct{ Svc *services.ProfileService }

func NewProfileController(s *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: s}
}

// GET /profiles/me — self projection, no role field.
func (h *ProfileController) Me(c *gin.Context) {
	p, err := h.Svc.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// PUT /profiles/me — a role value in the payload simply has nowhere to go.
func (h *ProfileController) UpdateMe(c *gin.Context) {
	var req services.SelfProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.UpdateMe(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return 0, false
	}
	return uint(id), true
}

// GET /admin/profiles/:userId — admin projection, role included.
func (h *ProfileController) AdminGet(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	p, err := h.Svc.AdminGet(id)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// PUT /admin/profiles/:userId — the only path that writes role.
func (h *ProfileController) AdminUpdate(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req services.AdminProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.AdminUpdate(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}
