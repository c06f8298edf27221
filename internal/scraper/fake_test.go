package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/browser"
	"github.com/rocket3855/Mission-to-Mars-Challenge/internal/dom"
)

var errVisit = errors.New("connection refused")

// fakeSession serves canned pages by URL and records every call.
type fakeSession struct {
	pages    map[string]string
	revealed map[string]string // page shown after a successful click, keyed by url
	failURL  string
	closeErr error

	history []string
	html    string
	calls   []string
	closed  bool
}

func newFakeSession(pages map[string]string) *fakeSession {
	return &fakeSession{pages: pages, revealed: map[string]string{}}
}

func (f *fakeSession) Visit(_ context.Context, url string) error {
	f.calls = append(f.calls, "visit "+url)
	if url == f.failURL {
		return fmt.Errorf("visit %s: %w", url, errVisit)
	}
	f.history = append(f.history, url)
	f.html = f.page(url)
	return nil
}

func (f *fakeSession) WaitForCSS(_ context.Context, selector string, _ time.Duration) bool {
	f.calls = append(f.calls, "wait "+selector)
	doc, err := dom.Parse(f.html)
	if err != nil {
		return false
	}
	_, err = doc.Select(selector)
	return err == nil
}

func (f *fakeSession) HTML(context.Context) (string, error) {
	return f.html, nil
}

func (f *fakeSession) ClickNth(_ context.Context, selector string, index int) error {
	f.calls = append(f.calls, fmt.Sprintf("click %s[%d]", selector, index))
	doc, err := dom.Parse(f.html)
	if err != nil {
		return err
	}
	if index >= len(doc.SelectAll(selector)) {
		return fmt.Errorf("%w: %s[%d]", browser.ErrElementNotFound, selector, index)
	}
	if page, ok := f.revealed[f.current()]; ok {
		f.html = page
	}
	return nil
}

func (f *fakeSession) Back(context.Context) error {
	f.calls = append(f.calls, "back")
	if len(f.history) < 2 {
		return errors.New("no history")
	}
	f.history = f.history[:len(f.history)-1]
	f.html = f.page(f.current())
	return nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return f.closeErr
}

func (f *fakeSession) current() string {
	if len(f.history) == 0 {
		return ""
	}
	return f.history[len(f.history)-1]
}

func (f *fakeSession) page(url string) string {
	if html, ok := f.pages[url]; ok {
		return html
	}
	return "<html><body></body></html>"
}

func (f *fakeSession) visits() []string {
	var out []string
	for _, c := range f.calls {
		if len(c) > 6 && c[:6] == "visit " {
			out = append(out, c[6:])
		}
	}
	return out
}

type fakeLauncher struct {
	sess *fakeSession
	err  error
}

func (l *fakeLauncher) Open(context.Context) (browser.Session, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.sess, nil
}

type fakeFetcher struct {
	pages map[string]string
	err   error
}

func (f *fakeFetcher) FetchHTML(_ context.Context, url string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	html, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("%w: %s returned 404", browser.ErrHTTPStatus, url)
	}
	return html, nil
}

func newTestScraper(sess *fakeSession, fetcher *fakeFetcher) *Scraper {
	if fetcher == nil {
		fetcher = &fakeFetcher{}
	}
	return New(&fakeLauncher{sess: sess}, fetcher, Options{RenderWait: time.Millisecond})
}
