package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hydrosense/hydrosense-backend-go/internal/api"
	"github.com/hydrosense/hydrosense-backend-go/internal/config"
	"github.com/hydrosense/hydrosense-backend-go/internal/database"
	"github.com/hydrosense/hydrosense-backend-go/internal/handler"
	"github.com/hydrosense/hydrosense-backend-go/internal/mlmodel"
	"github.com/hydrosense/hydrosense-backend-go/internal/observability"
	"github.com/hydrosense/hydrosense-backend-go/internal/repository"
	"github.com/hydrosense/hydrosense-backend-go/internal/service"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	// The model artifact and its column schema are loaded once and are
	// read-only for the process lifetime. Without them there is nothing
	// to serve.
	artifact, err := mlmodel.Load(cfg.ModelPath, cfg.ColumnsPath)
	if err != nil {
		log.Fatal("Failed to load model artifact: ", err)
	}
	log.Printf("Model loaded: version=%s columns=%d", artifact.Model.Version(), len(artifact.Columns))

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close()

	metrics := observability.NewMetrics()
	history := repository.NewHistoryRepository(database.GetDB())
	predictionService := service.NewPredictionService(artifact, history, metrics)

	router := api.SetupRouter(cfg,
		handler.NewPredictionHandler(predictionService),
		handler.NewReferenceHandler(),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
