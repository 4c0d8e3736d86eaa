package controllers

import (
	"errors"
	"strconv"

	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/pkg/resp"
	"github.com/arminsheibak/Online-Food-API/services"
	"github.com/arminsheibak/Online-Food-API/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

type CreateOrderReq struct {
	CartID uuid.UUID `json:"cartId" binding:"required"`
}

// POST /orders — converts the cart; 201 with the created order.
func (h *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.CreateFromCart(utils.CurrentUserID(c), req.CartID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoCart), errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders — scope depends on the caller's role.
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.Svc.List(utils.CurrentUserID(c), utils.CurrentRole(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.Svc.Detail(utils.CurrentUserID(c), utils.CurrentRole(c), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

type patchOrderReq struct {
	Delivered      *bool `json:"delivered"`
	DeliveryCrewID *uint `json:"deliveryCrewId"`
}

// PATCH /orders/:id — delivery crew/admin set delivered; admin may also
// assign the crew member. delivered only ever moves to true.
func (h *OrderController) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req patchOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	role := utils.CurrentRole(c)

	if req.DeliveryCrewID != nil {
		if role != entity.RoleAdmin {
			resp.Forbidden(c, "only admin may assign delivery crew")
			return
		}
		if err := h.Svc.AssignCrew(id, *req.DeliveryCrewID); err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				resp.NotFound(c, err.Error())
			case errors.Is(err, services.ErrNotDeliveryCrew):
				resp.BadRequest(c, err.Error())
			default:
				resp.ServerError(c, err)
			}
			return
		}
	}

	if req.Delivered != nil {
		if !*req.Delivered {
			resp.BadRequest(c, "delivered can not be unset")
			return
		}
		if err := h.Svc.MarkDelivered(utils.CurrentUserID(c), role, id); err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				resp.NotFound(c, err.Error())
			case errors.Is(err, services.ErrForbidden):
				resp.Forbidden(c, err.Error())
			default:
				resp.ServerError(c, err)
			}
			return
		}
	}

	o, err := h.Svc.Detail(utils.CurrentUserID(c), role, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /orders/:id (admin only, gated at the route)
func (h *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
