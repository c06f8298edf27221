package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "HEADLESS", "CHROME_PATH", "RENDER_WAIT", "PAGE_TIMEOUT", "NAV_RATE",
		"HTTP_TIMEOUT", "SCRAPE_TIMEOUT", "HEMISPHERE_STOP_LABEL", "NATS_URL", "NATS_SUBJECT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.True(t, cfg.Headless)
	assert.Empty(t, cfg.ChromePath)
	assert.Equal(t, time.Second, cfg.RenderWait)
	assert.Equal(t, 60*time.Second, cfg.PageTimeout)
	assert.Equal(t, 5.0, cfg.NavRate)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3*time.Minute, cfg.ScrapeTimeout)
	assert.Equal(t, "Back", cfg.HemisphereStopLabel)
	assert.Empty(t, cfg.NatsURL)
	assert.Equal(t, "mars.scrape.results", cfg.NatsSubject)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HEADLESS", "false")
	t.Setenv("RENDER_WAIT", "250ms")
	t.Setenv("NAV_RATE", "0")
	t.Setenv("HEMISPHERE_STOP_LABEL", "Return")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg := Load()

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 250*time.Millisecond, cfg.RenderWait)
	assert.Equal(t, 0.0, cfg.NavRate)
	assert.Equal(t, "Return", cfg.HemisphereStopLabel)
	assert.Equal(t, "nats://localhost:4222", cfg.NatsURL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("HEADLESS", "maybe")
	t.Setenv("RENDER_WAIT", "soon")
	t.Setenv("NAV_RATE", "-3")

	cfg := Load()

	assert.True(t, cfg.Headless)
	assert.Equal(t, time.Second, cfg.RenderWait)
	assert.Equal(t, 5.0, cfg.NavRate)
}
