// main.go
package main

import (
	"context"
	"log"
	"time"

	"shop-backend/cmd"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/wire"
	"shop-backend/pkg/database"
	"shop-backend/pkg/utils"

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

	// Connect to MongoDB
	mongo := database.NewMongo(config.Database, logger)

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := mongo.Connect(connectCtx, ""); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(mongo, logger)

	if err := repos.EnsureIndexes(connectCtx); err != nil {
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server, blocks until shutdown signal
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	// Disconnect database last
	disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDisconnect()

	if err := mongo.Disconnect(disconnectCtx); err != nil {
		logger.Error("Failed to disconnect database", zap.Error(err))
	}
}
