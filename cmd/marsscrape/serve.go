package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/api"
	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/publisher"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve scrapes over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Log

			pub, err := publisher.New(cfg.NatsURL, cfg.NatsSubject)
			if err != nil {
				return err
			}
			defer pub.Close()

			app := fiber.New(fiber.Config{
				DisableStartupMessage: true,
			})
			api.SetupRoutes(app, api.NewHandler(newScraper(cfg), pub, cfg.ScrapeTimeout))

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info().Msg("shutting down")
				if err := app.Shutdown(); err != nil {
					log.Error().Err(err).Msg("HTTP server shutdown error")
				}
			}()

			addr := ":" + cfg.HTTPPort
			log.Info().Str("addr", addr).Msg("HTTP API server starting")
			return app.Listen(addr)
		},
	}
}
