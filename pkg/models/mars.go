package models

import "time"

// ScrapeResult is one snapshot of every scraped page. A nil field means the
// matching extractor found nothing usable; CapturedAt is always set.
type ScrapeResult struct {
	RunID         string            `json:"run_id"`
	NewsTitle     *string           `json:"news_title"`
	NewsParagraph *string           `json:"news_paragraph"`
	FeaturedImage *string           `json:"featured_image"`
	Facts         *string           `json:"facts"`
	CapturedAt    time.Time         `json:"captured_at"`
	Hemispheres   []HemisphereEntry `json:"hemispheres"`
	RouteImage    string            `json:"route_image"`
}

// HemisphereEntry has no identity beyond its position in ScrapeResult.Hemispheres.
type HemisphereEntry struct {
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
}
