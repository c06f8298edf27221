package scraper

import (
	"context"
	"errors"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/browser"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
)

// The "full image" control is picked by position: the second button on the page.
// If the gallery adds or drops a button this clicks the wrong one.
const fullImageButton = 1

const fullImageSelector = "img.fancybox-image"

// FeaturedImage reveals the full-size hero image and returns its absolute URL,
// or nil when the button or the image is missing.
func (s *Scraper) FeaturedImage(ctx context.Context, sess browser.Session) (*string, error) {
	if err := sess.Visit(ctx, featuredImageURL); err != nil {
		return nil, err
	}

	if err := sess.ClickNth(ctx, "button", fullImageButton); err != nil {
		if errors.Is(err, browser.ErrElementNotFound) {
			logger.Log.Debug().Err(err).Msg("full image button not found")
			return nil, nil
		}
		return nil, err
	}
	sess.WaitForCSS(ctx, fullImageSelector, s.renderWait)

	doc, err := currentPage(ctx, sess)
	if err != nil {
		return nil, err
	}

	img, err := doc.Select(fullImageSelector)
	if err != nil {
		logger.Log.Debug().Err(err).Msg("featured image not found")
		return nil, nil
	}

	src, err := img.Attr("src")
	if err != nil {
		logger.Log.Debug().Err(err).Msg("featured image has no src")
		return nil, nil
	}

	url := featuredImageBase + src
	return &url, nil
}
