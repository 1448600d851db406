package controllers

import (
	"errors"
	"strconv"

	"pulsebite/pkg/resp"
	"pulsebite/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableController struct {
	Svc *services.TableService
}

func NewTableController(s *services.TableService) *TableController {
	return &TableController{Svc: s}
}

// GET /admin/tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

// POST /admin/tables
func (ctl *TableController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ctl.Svc.Create(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

// GET /admin/tables/:id/qr — the PNG guests scan
func (ctl *TableController) QRImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "table not found")
		return
	}
	if len(t.QRImage) == 0 {
		resp.NotFound(c, "no qr image for this table")
		return
	}
	c.Data(200, t.ImageType, t.QRImage)
}

// DELETE /admin/tables/:id
func (ctl *TableController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
