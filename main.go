// main.go
package main

import (
	"log"

	"go.uber.org/zap"

	"electronics-store/cmd"
	"electronics-store/internal/data/repository"
	"electronics-store/internal/wire"
	"electronics-store/pkg/database"
	"electronics-store/pkg/mailer"
	"electronics-store/pkg/token"
	"electronics-store/pkg/utils"
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

	// Background mail dispatcher for OTP delivery
	dispatcher := mailer.NewDispatcher(config.Email, logger)
	defer dispatcher.Close()

	// Token issuer for the access/refresh pair
	issuer := token.NewIssuer(config.JWT)

	// Wire all dependencies
	app := wire.Wiring(repos, config, dispatcher, issuer, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
