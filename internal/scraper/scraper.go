package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/browser"
	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/dom"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/models"
)

const (
	defaultRenderWait = time.Second
	DefaultStopLabel  = "Back"
)

// ErrSessionStart wraps failures to acquire a browser session.
var ErrSessionStart = errors.New("start browser session")

// Fetcher returns the raw HTML of a URL without rendering it.
type Fetcher interface {
	FetchHTML(ctx context.Context, url string) (string, error)
}

type Options struct {
	RenderWait time.Duration
	// StopLabel is the hemisphere heading text that ends the real list.
	StopLabel string
}

type Scraper struct {
	launcher   browser.Launcher
	fetcher    Fetcher
	renderWait time.Duration
	stopLabel  string
	now        func() time.Time
}

func New(launcher browser.Launcher, fetcher Fetcher, opts Options) *Scraper {
	if opts.RenderWait <= 0 {
		opts.RenderWait = defaultRenderWait
	}
	if opts.StopLabel == "" {
		opts.StopLabel = DefaultStopLabel
	}

	return &Scraper{
		launcher:   launcher,
		fetcher:    fetcher,
		renderWait: opts.RenderWait,
		stopLabel:  opts.StopLabel,
		now:        time.Now,
	}
}

// ScrapeAll runs every extractor once on a single browser session and returns
// the assembled record. Missing page content shows up as nil fields. Errors are
// returned only for session lifecycle and navigation failures.
func (s *Scraper) ScrapeAll(ctx context.Context) (result *models.ScrapeResult, err error) {
	runID := uuid.NewString()
	log := logger.Log.With().Str("run_id", runID).Logger()
	start := s.now()

	sess, err := s.launcher.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionStart, err)
	}
	defer func() {
		cerr := sess.Close()
		if cerr == nil {
			return
		}
		if err != nil {
			log.Error().Err(cerr).Msg("failed to release browser session")
			return
		}
		result, err = nil, fmt.Errorf("release browser session: %w", cerr)
	}()

	res := &models.ScrapeResult{RunID: runID}

	if res.NewsTitle, res.NewsParagraph, err = s.News(ctx, sess); err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}
	if res.FeaturedImage, err = s.FeaturedImage(ctx, sess); err != nil {
		return nil, fmt.Errorf("featured image: %w", err)
	}
	res.Facts = s.Facts(ctx)
	if res.Hemispheres, err = s.Hemispheres(ctx, sess); err != nil {
		return nil, fmt.Errorf("hemispheres: %w", err)
	}
	if res.RouteImage, err = s.RouteImage(ctx, sess); err != nil {
		return nil, fmt.Errorf("route image: %w", err)
	}

	res.CapturedAt = s.now()

	log.Info().
		Bool("news", res.NewsTitle != nil).
		Bool("featured_image", res.FeaturedImage != nil).
		Bool("facts", res.Facts != nil).
		Int("hemispheres", len(res.Hemispheres)).
		Dur("elapsed", res.CapturedAt.Sub(start)).
		Msg("scrape finished")

	return res, nil
}

// load visits url, gives waitFor a best-effort chance to render and parses the page.
func (s *Scraper) load(ctx context.Context, sess browser.Session, url, waitFor string) (*dom.Document, error) {
	if err := sess.Visit(ctx, url); err != nil {
		return nil, err
	}
	if waitFor != "" {
		sess.WaitForCSS(ctx, waitFor, s.renderWait)
	}
	return currentPage(ctx, sess)
}

func currentPage(ctx context.Context, sess browser.Session) (*dom.Document, error) {
	html, err := sess.HTML(ctx)
	if err != nil {
		return nil, err
	}
	return dom.Parse(html)
}

func absent(err error) bool {
	return errors.Is(err, dom.ErrNotFound)
}
