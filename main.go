package main

import (
	"log"
	"time"

	"github.com/athleteverse/api/config"
	_ "github.com/athleteverse/api/docs"
	"github.com/athleteverse/api/internal/event"
	"github.com/athleteverse/api/internal/game"
	"github.com/athleteverse/api/internal/reconcile"
	"github.com/athleteverse/api/internal/tournament"
	"github.com/athleteverse/api/internal/user"
	"github.com/athleteverse/api/routes"
)

// @title AthleteVerse REST API
// @version 1.0
// @description Server for the AthleteVerse sports events and eSports tournaments platform.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&event.Event{},
		&tournament.Tournament{},
		&game.Game{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := game.Seed(config.DB); err != nil {
		log.Fatalf("Game seed failed: %v", err)
	}

	reconciler := reconcile.NewReconciler(
		config.DB,
		time.Duration(cfg.Reconcile.IntervalMinutes)*time.Minute,
	)
	if err := reconciler.Start(); err != nil {
		log.Fatalf("Failed to start reconciler: %v", err)
	}
	defer reconciler.Stop()

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
