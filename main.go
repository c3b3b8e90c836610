// main.go
package main

import (
	"context"
	"log"

	"cinelog/cmd"
	"cinelog/internal/data/repository"
	"cinelog/internal/realtime"
	"cinelog/internal/wire"
	"cinelog/pkg/database"
	"cinelog/pkg/utils"

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

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Change-feed listener on its own connection
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener, err := realtime.NewListener(ctx, database.ConnString(config.Database), logger)
	if err != nil {
		logger.Fatal("Failed to start change-feed listener", zap.Error(err))
	}
	defer listener.Close(context.Background())

	go listener.Run(ctx)

	// Wire all dependencies
	app := wire.Wiring(db, repos, listener.Hub, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
