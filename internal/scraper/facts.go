package scraper

import (
	"context"
	"fmt"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/table"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
)

var factsColumns = []string{"Description", "Mars", "Earth"}

// Facts returns the Mars/Earth comparison table rendered as HTML. Any failure,
// including network errors, yields nil; a partial table is never returned.
func (s *Scraper) Facts(ctx context.Context) *string {
	out, err := s.facts(ctx)
	if err != nil {
		logger.Log.Warn().Err(err).Str("url", factsURL).Msg("facts table unavailable")
		return nil
	}
	return &out
}

func (s *Scraper) facts(ctx context.Context) (string, error) {
	html, err := s.fetcher.FetchHTML(ctx, factsURL)
	if err != nil {
		return "", fmt.Errorf("fetch facts: %w", err)
	}

	raw, err := table.ExtractFirst(html)
	if err != nil {
		return "", err
	}

	frame, err := table.NewFrame(raw.Rows, factsColumns...)
	if err != nil {
		return "", err
	}
	if err := frame.SetIndex("Description"); err != nil {
		return "", err
	}

	return frame.RenderHTML(), nil
}
