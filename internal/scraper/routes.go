package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/browser"
	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/dom"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
)

const routeKeyword = "route"

// RouteImage returns the image of the first block linking to a route page, or
// RouteFallbackImage. It only fails when the page cannot be loaded.
func (s *Scraper) RouteImage(ctx context.Context, sess browser.Session) (string, error) {
	doc, err := s.load(ctx, sess, routesURL, "div.list_text")
	if err != nil {
		return "", err
	}

	url, err := routeImage(doc)
	if err != nil {
		logger.Log.Debug().Err(err).Msg("route image not found, using fallback")
		return RouteFallbackImage, nil
	}
	return url, nil
}

func routeImage(doc *dom.Document) (string, error) {
	for _, block := range doc.SelectAll("div.image") {
		link, err := block.FindFirst("a", "")
		if err != nil {
			return "", err
		}
		href, err := link.Attr("href")
		if err != nil {
			return "", err
		}
		if !strings.Contains(strings.ToLower(href), routeKeyword) {
			continue
		}

		container, err := block.FindFirst("div", "list_image")
		if err != nil {
			return "", err
		}
		img, err := container.FindFirst("img", "")
		if err != nil {
			return "", err
		}
		src, err := img.Attr("src")
		if err != nil {
			return "", err
		}
		return routesURL + src, nil
	}

	return "", fmt.Errorf("%w: block linking to a %s", dom.ErrNotFound, routeKeyword)
}
