package controllers

import (
	"errors"
	"strconv"

	"pulsebite/pkg/resp"
	"pulsebite/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /tables/:id/cart
func (ctl *CartController) Get(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))
	cart, totals, err := ctl.Svc.Get(uint(tableID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "totals": totals})
}

// POST /tables/:id/cart/items
func (ctl *CartController) Add(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.Add(uint(tableID), &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// PATCH /tables/:id/cart/items/:itemId
func (ctl *CartController) UpdateQuantity(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))
	itemID, _ := strconv.Atoi(c.Param("itemId"))
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.UpdateQuantity(uint(tableID), uint(itemID), req.Quantity); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": itemID})
}

// DELETE /tables/:id/cart/items/:itemId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))
	itemID, _ := strconv.Atoi(c.Param("itemId"))
	if err := ctl.Svc.RemoveItem(uint(tableID), uint(itemID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": itemID})
}

// DELETE /tables/:id/cart
func (ctl *CartController) Clear(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Clear(uint(tableID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": tableID})
}
