package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/derinolu/estate-insights/internal/config"
	"github.com/derinolu/estate-insights/internal/dataset"
	"github.com/derinolu/estate-insights/internal/services"
)

// Handler holds all handler dependencies
type Handler struct {
	store      *dataset.Store
	cfg        *config.Config
	aggregator *services.Aggregator
}

// New creates a new Handler instance
func New(store *dataset.Store, cfg *config.Config) *Handler {
	return &Handler{
		store:      store,
		cfg:        cfg,
		aggregator: services.NewAggregator(cfg.MinSampleSize),
	}
}

// ErrorHandler is a custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Default to 500
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"detail": message,
	})
}

// Detail returns an error response in the shape the dashboard client
// binds to: a status code and a "detail" message.
func Detail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"detail": message,
	})
}
