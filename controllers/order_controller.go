package controllers

import (
	"errors"
	"strconv"

	"pulsebite/entity"
	"pulsebite/pkg/resp"
	"pulsebite/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc       *services.OrderService
	Lifecycle *services.OrderLifecycle
}

func NewOrderController(svc *services.OrderService, lc *services.OrderLifecycle) *OrderController {
	return &OrderController{Svc: svc, Lifecycle: lc}
}

// POST /tables/:id/orders
func (ctl *OrderController) Place(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	orderID, err := ctl.Svc.Place(uint(tableID), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrBadQuantity):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTableNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"orderId": orderID})
}

// POST /tables/:id/checkout — turns the table's cart into an order
func (ctl *OrderController) PlaceFromCart(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Note string `json:"note"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&req)

	orderID, err := ctl.Svc.PlaceFromCart(uint(tableID), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTableNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"orderId": orderID})
}

// POST /kitchen/orders/:id/advance
func (ctl *OrderController) Advance(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	status, err := ctl.Lifecycle.Advance(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrStatusConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": id, "status": status})
}

// PATCH /admin/orders/:id/status — unguarded override, any direction
func (ctl *OrderController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Lifecycle.SetStatus(uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// DELETE /admin/orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
