package controllers

import (
	"errors"
	"strconv"

	"pulsebite/pkg/resp"
	"pulsebite/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Svc *services.CategoryService
}

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /admin/categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /admin/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Svc.Create(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /admin/categories/:id
func (ctl *CategoryController) Rename(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.Rename(uint(id), req.Name); err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// DELETE /admin/categories/:id — menu items keep the orphaned name
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
