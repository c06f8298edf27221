package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/publisher"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/models"
)

// Runner performs one full scrape.
type Runner interface {
	ScrapeAll(ctx context.Context) (*models.ScrapeResult, error)
}

type Handler struct {
	runner    Runner
	publisher publisher.Publisher
	timeout   time.Duration
	// Every scrape drives its own browser; one at a time keeps resource use flat.
	slot chan struct{}
}

func NewHandler(runner Runner, pub publisher.Publisher, timeout time.Duration) *Handler {
	if pub == nil {
		pub = publisher.Nop{}
	}
	return &Handler{
		runner:    runner,
		publisher: pub,
		timeout:   timeout,
		slot:      make(chan struct{}, 1),
	}
}

func SetupRoutes(app *fiber.App, h *Handler) {
	app.Get("/api/scrape", h.handleScrape)
	app.Get("/health", h.handleHealth)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"busy":   len(h.slot) > 0,
	})
}

func (h *Handler) handleScrape(c *fiber.Ctx) error {
	log := logger.Log

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	select {
	case h.slot <- struct{}{}:
		defer func() { <-h.slot }()
	case <-ctx.Done():
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "scrape already in progress"})
	}

	start := time.Now()
	result, err := h.runner.ScrapeAll(ctx)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Int64("time_ms", elapsed.Milliseconds()).Msg("scrape failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"time_ms": elapsed.Milliseconds(),
		})
	}

	if err := h.publisher.Publish(ctx, result); err != nil {
		log.Warn().Err(err).Str("run_id", result.RunID).Msg("failed to publish scrape result")
	}

	log.Info().
		Str("run_id", result.RunID).
		Int64("time_ms", elapsed.Milliseconds()).
		Msg("scrape request completed")

	return c.JSON(result)
}
