package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/nutriscope/backend/config"
	httpDelivery "github.com/nutriscope/backend/internal/delivery/http"
	"github.com/nutriscope/backend/internal/domain"
	"github.com/nutriscope/backend/internal/guidelines"
	"github.com/nutriscope/backend/internal/infrastructure/cache"
	"github.com/nutriscope/backend/internal/infrastructure/store"
	"github.com/nutriscope/backend/internal/infrastructure/usda"
	"github.com/nutriscope/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriScope Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Snapshot store is best-effort: a broken store means the dataset is
	// refetched on every start, not that the server fails.
	var datasetStore domain.DatasetStore
	sqliteStore, err := store.NewSQLiteStore(cfg.Dataset.StorePath)
	if err != nil {
		log.Printf("WARNING: snapshot store unavailable (%v), continuing without persistence", err)
	} else {
		datasetStore = sqliteStore
		defer sqliteStore.Close()
		log.Printf("Snapshot store: %s", cfg.Dataset.StorePath)
	}

	// No API key means no fetching: the server degrades to the stored
	// snapshot, or an empty dataset.
	var usdaClient domain.USDAClient
	if cfg.USDA.APIKey != "" {
		client := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL, cfg.USDA.PageSize)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
			log.Printf("USDA client debug mode enabled")
		}
		usdaClient = client
		log.Printf("USDA API configured: %s", cfg.USDA.BaseURL)
	} else {
		log.Printf("WARNING: no USDA API key configured, dataset refresh disabled")
	}

	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	datasetService := usecase.NewDatasetService(
		datasetStore,
		usdaClient,
		memoryCache,
		usecase.DatasetServiceConfig{
			ResultsPerQuery: cfg.Dataset.ResultsPerQuery,
			CacheTTL:        cfg.Cache.TTL,
		},
	)

	table, err := datasetService.LoadTable(context.Background())
	if err != nil {
		log.Fatalf("Failed to load nutrient table: %v", err)
	}
	log.Printf("Nutrient table loaded: %d foods, %d nutrient columns",
		table.Len(), len(table.NutrientKeys()))

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(table, guidelines.NewRegistry())

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
