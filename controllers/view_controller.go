package controllers

import (
	"strconv"

	"pulsebite/pkg/resp"
	"pulsebite/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ViewController serves one-shot reads of the same snapshots the
// websocket streams push. Admin and kitchen come straight from the
// long-lived projectors; guest views are computed on demand so a
// plain page load never spins up a projector.
type ViewController struct {
	DB      *gorm.DB
	Admin   *services.AdminProjector
	Kitchen *services.KitchenProjector
	TaxRate float64
}

func NewViewController(db *gorm.DB, admin *services.AdminProjector, kitchen *services.KitchenProjector, taxRate float64) *ViewController {
	return &ViewController{DB: db, Admin: admin, Kitchen: kitchen, TaxRate: taxRate}
}

// GET /admin/dashboard
func (ctl *ViewController) Dashboard(c *gin.Context) {
	resp.OK(c, ctl.Admin.Snapshot())
}

// GET /kitchen/tickets?priority=Expedite
func (ctl *ViewController) KitchenTickets(c *gin.Context) {
	view := ctl.Kitchen.Snapshot()
	if tier := c.Query("priority"); tier != "" {
		switch p := services.Priority(tier); p {
		case services.PriorityExpedite, services.PriorityRush, services.PriorityStandard:
			view.Tickets = services.FilterTickets(view.Tickets, p)
		default:
			resp.BadRequest(c, "unknown priority tier: "+tier)
			return
		}
	}
	resp.OK(c, view)
}

// GET /tables/:id/view
func (ctl *ViewController) GuestView(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))
	view, err := services.QueryGuestView(ctl.DB, uint(tableID), ctl.TaxRate)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}
