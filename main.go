package main

import (
	"fmt"
	"log"

	"pulsebite/configs"
	"pulsebite/feed"
	"pulsebite/repository"
	"pulsebite/routes"
	"pulsebite/services"
	"pulsebite/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect db failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedStaff(db, cfg); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}

	// Change feed + role projectors
	f := feed.New()
	admin := services.NewAdminProjector(db, f)
	kitchen := services.NewKitchenProjector(db, f)

	// Live websocket hub
	hub := ws.NewLiveHub(db, f, repository.NewTableRepository(db), admin, kitchen, cfg.TaxRate)
	go hub.Run()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, f, admin, kitchen, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
