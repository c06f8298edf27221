package scraper

import (
	"context"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/browser"
	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/dom"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/models"
)

const sampleLinkText = "Sample"

// Hemispheres follows every hemisphere heading to its detail page and collects
// the sample image URL. Headings after the stop label are ignored. If any
// detail page lacks the expected links the whole list is dropped and nil is
// returned. Navigation relies on going back to the index after each heading,
// so the session must not be shared while this runs.
func (s *Scraper) Hemispheres(ctx context.Context, sess browser.Session) ([]models.HemisphereEntry, error) {
	doc, err := s.load(ctx, sess, hemispheresURL, "")
	if err != nil {
		return nil, err
	}

	headings := filter(
		takeUntil(doc.FindAll("h3"), func(h *dom.Node) bool { return h.Text() == s.stopLabel }),
		func(h *dom.Node) bool { return h.Text() != "" },
	)

	entries := make([]models.HemisphereEntry, 0, len(headings))
	for _, h := range headings {
		entry, err := s.hemisphere(ctx, sess, h)
		if absent(err) {
			logger.Log.Debug().Err(err).Str("title", h.Text()).Msg("hemisphere detail incomplete, dropping list")
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *Scraper) hemisphere(ctx context.Context, sess browser.Session, heading *dom.Node) (models.HemisphereEntry, error) {
	title := heading.Text()

	link, err := heading.Parent()
	if err != nil {
		return models.HemisphereEntry{}, err
	}
	href, err := link.Attr("href")
	if err != nil {
		return models.HemisphereEntry{}, err
	}

	detail, err := s.load(ctx, sess, hemispheresURL+href, "")
	if err != nil {
		return models.HemisphereEntry{}, err
	}

	sample, err := detail.FindByText("a", sampleLinkText)
	if err != nil {
		return models.HemisphereEntry{}, err
	}
	imageHref, err := sample.Attr("href")
	if err != nil {
		return models.HemisphereEntry{}, err
	}

	if err := sess.Back(ctx); err != nil {
		return models.HemisphereEntry{}, err
	}

	return models.HemisphereEntry{ImageURL: hemispheresURL + imageHref, Title: title}, nil
}

// takeUntil returns the items before the first one matching stop.
func takeUntil[T any](items []T, stop func(T) bool) []T {
	for i, item := range items {
		if stop(item) {
			return items[:i]
		}
	}
	return items
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
