// main.go
package main

import (
	"context"
	"log"
	"time"

	"product-catalog/cmd"
	"product-catalog/internal/data/repository"
	"product-catalog/internal/wire"
	"product-catalog/pkg/cache"
	"product-catalog/pkg/database"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Report cache, optional
	reportCache := cache.NewCache(config.Redis, logger)
	defer reportCache.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db.DB, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, reportCache, logger)
	defer app.RateLimiter.Stop()

	// Seed the bootstrap admin account if configured
	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.Service.User.EnsureAdminUser(bootCtx, config.Admin); err != nil {
		cancel()
		logger.Fatal("Failed to ensure admin account", zap.Error(err))
	}
	cancel()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
