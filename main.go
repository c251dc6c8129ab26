package main

import (
	"Foodgram-Backend/cmd/config"
	migration "Foodgram-Backend/cmd/database/migrate"
	"Foodgram-Backend/cmd/database/seed"
	"Foodgram-Backend/internal/utils"
	"Foodgram-Backend/internal/utils/logger"
	"context"
	"fmt"
	"log"
	"os"
)

const usage = "usage: foodgram [serve|migrate|seed]"

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	switch command {
	case "serve":
		app, err := config.NewApp(db)
		if err != nil {
			log.Fatalf("failed to create app: %v", err)
		}
		if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	case "migrate":
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		logger.Info("migration finished")
	case "seed":
		if err := seed.Load(context.Background(), db, utils.GetConfig("DATA_DIR")); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		logger.Info("seed finished")
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
