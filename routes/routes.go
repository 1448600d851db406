package routes

import (
	"pulsebite/configs"
	"pulsebite/controllers"
	"pulsebite/feed"
	"pulsebite/middlewares"
	"pulsebite/repository"
	"pulsebite/services"
	"pulsebite/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, f *feed.Feed, admin *services.AdminProjector, kitchen *services.KitchenProjector, hub *ws.LiveHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	tableRepo := repository.NewTableRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	tableSvc := services.NewTableService(tableRepo, f, cfg.PublicOrigin)
	categorySvc := services.NewCategoryService(categoryRepo, f)
	menuSvc := services.NewMenuService(menuRepo, f)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, f, cfg.TaxRate)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, cartRepo, f)
	lifecycle := services.NewOrderLifecycle(db, orderRepo, f)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, lifecycle)
	viewCtrl := controllers.NewViewController(db, admin, kitchen, cfg.TaxRate)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Guest surface — reached from a scanned QR, no login
	t := r.Group("/tables/:id")
	{
		t.GET("/view", viewCtrl.GuestView)
		t.GET("/cart", cartCtrl.Get)
		t.POST("/cart/items", cartCtrl.Add)
		t.PATCH("/cart/items/:itemId", cartCtrl.UpdateQuantity)
		t.DELETE("/cart/items/:itemId", cartCtrl.RemoveItem)
		t.DELETE("/cart", cartCtrl.Clear)
		t.POST("/orders", orderCtrl.Place)
		t.POST("/checkout", orderCtrl.PlaceFromCart)
	}

	// Kitchen (kitchen/admin)
	k := r.Group("/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret, "kitchen", "admin"))
	{
		k.GET("/tickets", viewCtrl.KitchenTickets) // ?priority=Expedite
		k.POST("/orders/:id/advance", orderCtrl.Advance)
	}

	// Admin (admin only)
	ad := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		ad.GET("/dashboard", viewCtrl.Dashboard)

		ad.GET("/tables", tableCtrl.List)
		ad.POST("/tables", tableCtrl.Create)
		ad.GET("/tables/:id/qr", tableCtrl.QRImage)
		ad.DELETE("/tables/:id", tableCtrl.Delete)

		ad.GET("/categories", categoryCtrl.List)
		ad.POST("/categories", categoryCtrl.Create)
		ad.PATCH("/categories/:id", categoryCtrl.Rename)
		ad.DELETE("/categories/:id", categoryCtrl.Delete)

		ad.GET("/menu", menuCtrl.List)
		ad.POST("/menu", menuCtrl.Create)
		ad.PATCH("/menu/:id", menuCtrl.Update)
		ad.DELETE("/menu/:id", menuCtrl.Delete)

		ad.PATCH("/orders/:id/status", orderCtrl.SetStatus)
		ad.DELETE("/orders/:id", orderCtrl.Delete)
	}

	// Live streams
	r.GET("/ws/admin", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleAdmin)
	r.GET("/ws/kitchen", middlewares.WSAuthMiddleware(cfg.JWTSecret, "kitchen", "admin"), hub.HandleKitchen)
	r.GET("/ws/tables/:id", hub.HandleTable)
}
