// Seeds the catalog with demo data. Run from the repo root:
//
//	go run ./cmd/seed
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"electronics-store/internal/data/repository"
	"electronics-store/internal/tools/seed"
	"electronics-store/pkg/database"
	"electronics-store/pkg/utils"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db, logger)

	if err := seed.Run(context.Background(), db, repos, logger); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	logger.Info("Seeding complete")
}
