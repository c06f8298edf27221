package scraper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSite() (*fakeSession, *fakeFetcher) {
	pages := hemispherePages()
	pages[newsURL] = `<div class="list_text"><div class="content_title">Perseverance lands</div><div class="article_teaser_body">Touchdown confirmed.</div></div>`
	pages[featuredImageURL] = `<button>Menu</button><button>Full Image</button>`
	pages[routesURL] = `<div class="image"><a href="/route/1"></a><div class="list_image"><img src="route.jpg"></div></div>`

	sess := newFakeSession(pages)
	sess.revealed[featuredImageURL] = `<img class="fancybox-image" src="image/featured/mars2.jpg">`

	return sess, &fakeFetcher{pages: map[string]string{factsURL: factsPage}}
}

func TestScrapeAll(t *testing.T) {
	sess, fetcher := fullSite()
	s := newTestScraper(sess, fetcher)

	start := time.Now()
	res, err := s.ScrapeAll(context.Background())
	require.NoError(t, err)

	require.NotNil(t, res.NewsTitle)
	assert.Equal(t, "Perseverance lands", *res.NewsTitle)
	assert.Equal(t, "Touchdown confirmed.", *res.NewsParagraph)
	require.NotNil(t, res.FeaturedImage)
	assert.Equal(t, featuredImageBase+"image/featured/mars2.jpg", *res.FeaturedImage)
	require.NotNil(t, res.Facts)
	assert.Contains(t, *res.Facts, "Moons:")
	require.Len(t, res.Hemispheres, 1)
	assert.Equal(t, "Cerberus", res.Hemispheres[0].Title)
	assert.Equal(t, "https://nasa.gov/route.jpg", res.RouteImage)
	assert.NotEmpty(t, res.RunID)
	assert.False(t, res.CapturedAt.Before(start))

	assert.Equal(t, []string{
		newsURL,
		featuredImageURL,
		hemispheresURL,
		hemispheresURL + "cerberus.html",
		routesURL,
	}, sess.visits())
	assert.True(t, sess.closed)
}

func TestScrapeAll_EverythingMissing(t *testing.T) {
	sess := newFakeSession(nil)
	s := newTestScraper(sess, &fakeFetcher{err: errVisit})

	start := time.Now()
	res, err := s.ScrapeAll(context.Background())
	require.NoError(t, err)

	assert.Nil(t, res.NewsTitle)
	assert.Nil(t, res.NewsParagraph)
	assert.Nil(t, res.FeaturedImage)
	assert.Nil(t, res.Facts)
	assert.Empty(t, res.Hemispheres)
	assert.Equal(t, RouteFallbackImage, res.RouteImage)
	assert.False(t, res.CapturedAt.IsZero())
	assert.False(t, res.CapturedAt.Before(start))
	assert.True(t, sess.closed)
}

func TestScrapeAll_FreshRecordPerCall(t *testing.T) {
	sess, fetcher := fullSite()
	s := newTestScraper(sess, fetcher)

	first, err := s.ScrapeAll(context.Background())
	require.NoError(t, err)
	second, err := s.ScrapeAll(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestScrapeAll_SessionStartFails(t *testing.T) {
	s := New(&fakeLauncher{err: errors.New("chrome not found")}, &fakeFetcher{}, Options{})

	res, err := s.ScrapeAll(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrSessionStart)
}

func TestScrapeAll_ReleasesSessionOnNavigationError(t *testing.T) {
	sess, fetcher := fullSite()
	sess.failURL = featuredImageURL

	res, err := newTestScraper(sess, fetcher).ScrapeAll(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, errVisit)
	assert.True(t, sess.closed)
	assert.NotContains(t, sess.visits(), hemispheresURL)
}

func TestScrapeAll_ReleaseError(t *testing.T) {
	sess, fetcher := fullSite()
	sess.closeErr = errors.New("browser already gone")

	res, err := newTestScraper(sess, fetcher).ScrapeAll(context.Background())
	assert.Nil(t, res)
	assert.ErrorContains(t, err, "release browser session")
}

func TestNew_Defaults(t *testing.T) {
	s := New(&fakeLauncher{}, &fakeFetcher{}, Options{})
	assert.Equal(t, defaultRenderWait, s.renderWait)
	assert.Equal(t, DefaultStopLabel, s.stopLabel)
}
