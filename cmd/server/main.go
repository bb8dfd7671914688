// @title         candidate-dashboard API
// @version       1.0
// @description   CRUD dashboard backend for candidate CV profiles with delegated semantic search and CV ingestion.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/conchobar/candidates/docs"

	// internal imports
	api "github.com/conchobar/candidates/api/http"
	"github.com/conchobar/candidates/api/http/handlers"
	"github.com/conchobar/candidates/pkg/blob/bucket"
	"github.com/conchobar/candidates/pkg/config"
	"github.com/conchobar/candidates/pkg/health"
	"github.com/conchobar/candidates/pkg/health/checkers"
	"github.com/conchobar/candidates/pkg/logger"
	"github.com/conchobar/candidates/pkg/profile"
	pgrepo "github.com/conchobar/candidates/pkg/repository/postgres"
	"github.com/conchobar/candidates/pkg/search"
	"github.com/conchobar/candidates/pkg/search/webhook"
	"github.com/conchobar/candidates/pkg/storage/postgres"
	"github.com/conchobar/candidates/pkg/upload"
)

func main() {
	// Load configuration from env/.env; refuse to start half-configured.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.LogJSON, false)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	// Connect to PostgreSQL
	pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		lg.Fatal("postgres connect", zap.Error(err))
	}
	defer pool.Close()

	// Wire dependencies (Clean Architecture)
	profileRepo, err := pgrepo.NewProfileRepository(pool)
	if err != nil {
		lg.Fatal("init profile repo", zap.Error(err))
	}
	blobs := bucket.New(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket)

	profileUC := profile.NewService(profileRepo, blobs, lg)
	candidatesHandler := handlers.NewCandidatesHandler(profileUC)

	engine := search.NewEngine(webhook.New(cfg.SearchWebhookURL), lg)
	searchHandler := handlers.NewSearchHandler(engine, profileUC)

	orch := upload.New(cfg.UploadWebhookURL, lg)
	uploadHandler := handlers.NewUploadHandler(orch, lg)

	// Health service: compose checkers
	readiness := health.NewService(
		checkers.NewPostgresChecker(pool),
		checkers.NewBucketChecker(blobs),
	)
	healthHandler := handlers.NewHealthHandler(readiness)

	app := fiber.New()

	// Register routes
	api.Register(app, candidatesHandler, searchHandler, uploadHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	lg.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
