package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/publisher"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/models"
)

func scrapeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run every extractor once and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "table" {
				return fmt.Errorf("unknown format %q, want json or table", format)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.ScrapeTimeout)
			defer cancel()

			result, err := newScraper(cfg).ScrapeAll(ctx)
			if err != nil {
				return err
			}

			pub, err := publisher.New(cfg.NatsURL, cfg.NatsSubject)
			if err != nil {
				logger.Log.Warn().Err(err).Msg("result publishing unavailable")
			} else {
				defer pub.Close()
				if err := pub.Publish(ctx, result); err != nil {
					logger.Log.Warn().Err(err).Msg("failed to publish scrape result")
				}
			}

			if format == "table" {
				writeSummary(os.Stdout, result)
				return nil
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or table")
	return cmd
}

// writeSummary prints the record as a two-column table. The facts table is
// HTML and only its presence is reported.
func writeSummary(w io.Writer, r *models.ScrapeResult) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Field", "Value"})

	t.AppendRow(table.Row{"Run", r.RunID})
	t.AppendRow(table.Row{"Captured", r.CapturedAt.Format(time.RFC3339)})
	t.AppendRow(table.Row{"News title", orMissing(r.NewsTitle)})
	t.AppendRow(table.Row{"News paragraph", orMissing(r.NewsParagraph)})
	t.AppendRow(table.Row{"Featured image", orMissing(r.FeaturedImage)})
	if r.Facts != nil {
		t.AppendRow(table.Row{"Facts", fmt.Sprintf("%d bytes of HTML", len(*r.Facts))})
	} else {
		t.AppendRow(table.Row{"Facts", "-"})
	}
	t.AppendSeparator()
	if r.Hemispheres == nil {
		t.AppendRow(table.Row{"Hemispheres", "-"})
	}
	for _, h := range r.Hemispheres {
		t.AppendRow(table.Row{h.Title, h.ImageURL})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"Route image", r.RouteImage})

	t.Render()
}

func orMissing(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
