package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/primaaawdn/LinkedOn-GC01/internal/router"
	"github.com/primaaawdn/LinkedOn-GC01/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Initialize Redis (nil client runs the API without the cache)
	redisClient := config.InitRedis(cfg)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, cfg, db.Database, redisClient); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
