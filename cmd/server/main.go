package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/derinolu/estate-insights/internal/config"
	"github.com/derinolu/estate-insights/internal/dataset"
	"github.com/derinolu/estate-insights/internal/handlers"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Build the dataset source
	src, err := buildSource(cfg)
	if err != nil {
		log.Fatalf("Failed to create dataset source: %v", err)
	}

	opts := dataset.LoadOptions{
		PriceBandMin: cfg.PriceBandMin,
		PriceBandMax: cfg.PriceBandMax,
	}

	// Load the dataset before serving; requests never see an empty table
	ctx := context.Background()
	ds, err := dataset.Load(ctx, src, opts)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	store := dataset.NewStore(ds)
	store.StartRefresher(ctx, cfg.ReloadTTL, func(ctx context.Context) (*dataset.Dataset, error) {
		return dataset.Load(ctx, src, opts)
	})

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))

	// Create handler with dependencies
	h := handlers.New(store, cfg)

	// Routes
	app.Get("/", h.Root)
	api := app.Group("/api")
	api.Get("/average_price", h.AveragePrice)
	api.Get("/trends", h.Trends)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func buildSource(cfg *config.Config) (dataset.Source, error) {
	if cfg.S3Enabled {
		return dataset.NewObjectSource(
			cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3Object, cfg.S3Region, cfg.S3UseSSL,
		)
	}
	return &dataset.FileSource{Path: cfg.DataPath}, nil
}
