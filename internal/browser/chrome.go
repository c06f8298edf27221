package browser

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	cdpopts "github.com/rocket3855/Mission-to-Mars-Challenge/pkg/chromedp"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
)

const (
	defaultPageTimeout = 60 * time.Second
	pollInterval       = 100 * time.Millisecond
)

type Options struct {
	Headless    bool
	ExecPath    string
	PageTimeout time.Duration
	NavRate     float64 // visits per second, 0 means unlimited
}

// ChromeLauncher starts a fresh headless Chrome for every session.
type ChromeLauncher struct {
	allocOpts   []chromedp.ExecAllocatorOption
	pageTimeout time.Duration
	limiter     *rate.Limiter
}

func NewChromeLauncher(opts Options) *ChromeLauncher {
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = defaultPageTimeout
	}

	limit := rate.Inf
	if opts.NavRate > 0 {
		limit = rate.Limit(opts.NavRate)
	}

	return &ChromeLauncher{
		allocOpts:   cdpopts.GetExecAllocatorOptions(opts.Headless, opts.ExecPath),
		pageTimeout: opts.PageTimeout,
		limiter:     rate.NewLimiter(limit, 1),
	}
}

func (l *ChromeLauncher) Open(ctx context.Context) (Session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, l.allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	err := chromedp.Run(browserCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		return network.SetExtraHTTPHeaders(network.Headers{
			"Accept-Language": "en-US,en;q=0.9",
		}).Do(ctx)
	}))
	if err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	logger.Log.Debug().Dur("page_timeout", l.pageTimeout).Msg("browser session opened")

	return &ChromeSession{
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
		pageTimeout:   l.pageTimeout,
		limiter:       l.limiter,
	}, nil
}

// ChromeSession drives a single tab.
type ChromeSession struct {
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
	pageTimeout   time.Duration
	limiter       *rate.Limiter
}

func (s *ChromeSession) Visit(ctx context.Context, url string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("navigation throttle: %w", err)
	}

	if err := s.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("visit %s: %w", url, err)
	}

	logger.Log.Debug().Str("url", url).Msg("page visited")
	return nil
}

func (s *ChromeSession) WaitForCSS(ctx context.Context, selector string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if s.exists(ctx, selector) {
			return true
		}
		if time.Now().After(deadline) {
			logger.Log.Debug().Str("selector", selector).Dur("timeout", timeout).Msg("element did not render in time")
			return false
		}

		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}

func (s *ChromeSession) exists(ctx context.Context, selector string) bool {
	var found bool
	script := "document.querySelector(" + strconv.Quote(selector) + ") !== null"
	if err := s.run(ctx, chromedp.Evaluate(script, &found)); err != nil {
		return false
	}
	return found
}

func (s *ChromeSession) HTML(ctx context.Context) (string, error) {
	var html string
	if err := s.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("read html: %w", err)
	}
	return html, nil
}

func (s *ChromeSession) ClickNth(ctx context.Context, selector string, index int) error {
	var nodes []*cdp.Node
	if err := s.run(ctx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0))); err != nil {
		return fmt.Errorf("query %s: %w", selector, err)
	}

	if index < 0 || index >= len(nodes) {
		return fmt.Errorf("%w: %s[%d] of %d", ErrElementNotFound, selector, index, len(nodes))
	}

	if err := s.run(ctx, chromedp.MouseClickNode(nodes[index])); err != nil {
		return fmt.Errorf("click %s[%d]: %w", selector, index, err)
	}
	return nil
}

func (s *ChromeSession) Back(ctx context.Context) error {
	if err := s.run(ctx, chromedp.NavigateBack()); err != nil {
		return fmt.Errorf("navigate back: %w", err)
	}
	return nil
}

func (s *ChromeSession) Close() error {
	err := chromedp.Cancel(s.browserCtx)
	s.browserCancel()
	s.allocCancel()

	if err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	logger.Log.Debug().Msg("browser session closed")
	return nil
}

// run executes actions on the tab, bounded by the page timeout and by ctx.
func (s *ChromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(s.browserCtx, s.pageTimeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}
