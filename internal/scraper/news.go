package scraper

import (
	"context"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/browser"
	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/dom"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
)

const teaserSelector = "div.list_text"

// News returns the title and teaser body of the latest article, or two nils
// when the listing does not have the expected structure.
func (s *Scraper) News(ctx context.Context, sess browser.Session) (title, paragraph *string, err error) {
	doc, err := s.load(ctx, sess, newsURL, teaserSelector)
	if err != nil {
		return nil, nil, err
	}

	t, p, err := newsTeaser(doc)
	if absent(err) {
		logger.Log.Debug().Err(err).Msg("news teaser not found")
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return &t, &p, nil
}

func newsTeaser(doc *dom.Document) (string, string, error) {
	slide, err := doc.Select(teaserSelector)
	if err != nil {
		return "", "", err
	}

	title, err := slide.FindFirst("div", "content_title")
	if err != nil {
		return "", "", err
	}

	body, err := slide.FindFirst("div", "article_teaser_body")
	if err != nil {
		return "", "", err
	}

	return title.Text(), body.Text(), nil
}
