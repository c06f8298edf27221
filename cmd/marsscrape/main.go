package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/browser"
	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/config"
	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/scraper"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "marsscrape",
	Short:         "Scrape Mars news, images and facts into a single record",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger.Init(logger.IsDev())
	},
}

func main() {
	rootCmd.AddCommand(scrapeCmd(), serveCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newScraper(cfg *config.Config) *scraper.Scraper {
	launcher := browser.NewChromeLauncher(browser.Options{
		Headless:    cfg.Headless,
		ExecPath:    cfg.ChromePath,
		PageTimeout: cfg.PageTimeout,
		NavRate:     cfg.NavRate,
	})

	return scraper.New(launcher, browser.NewHTTPFetcher(cfg.HTTPTimeout), scraper.Options{
		RenderWait: cfg.RenderWait,
		StopLabel:  cfg.HemisphereStopLabel,
	})
}
