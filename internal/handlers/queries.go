package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/derinolu/estate-insights/internal/services"
)

// Root is the liveness endpoint; it also reports how many cleaned rows
// are being served.
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":     "estate-insights API is running",
		"rows_loaded": h.store.Current().Len(),
	})
}

// AveragePrice returns the median listing price for the selected region
// and/or category, after outlier suppression.
func (h *Handler) AveragePrice(c *fiber.Ctx) error {
	sel := services.Selector{
		Region:   c.Query("region"),
		Category: c.Query("category"),
	}

	result, err := h.aggregator.AveragePrice(h.store.Current(), sel)
	if err != nil {
		return h.queryError(c, err)
	}
	return c.JSON(result)
}

// Trends returns per-month median prices for the selected region and/or
// category. At least one selector is required.
func (h *Handler) Trends(c *fiber.Ctx) error {
	sel := services.Selector{
		Region:   c.Query("region"),
		Category: c.Query("category"),
	}

	points, err := h.aggregator.Trend(h.store.Current(), sel)
	if err != nil {
		return h.queryError(c, err)
	}
	return c.JSON(points)
}

// queryError translates the aggregation error taxonomy into responses.
func (h *Handler) queryError(c *fiber.Ctx, err error) error {
	var invalid *services.InvalidSelectorError
	switch {
	case errors.As(err, &invalid):
		return Detail(c, fiber.StatusBadRequest, invalid.Error())
	case errors.Is(err, services.ErrSelectorRequired):
		return Detail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNoData),
		errors.Is(err, services.ErrInsufficientData):
		return Detail(c, fiber.StatusNotFound, err.Error())
	}
	return Detail(c, fiber.StatusInternalServerError, "failed to compute statistics")
}
