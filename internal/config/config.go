package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	// Browser settings
	Headless    bool
	ChromePath  string        // empty means probe the usual install locations
	RenderWait  time.Duration // best-effort wait for a page's marker element
	PageTimeout time.Duration // upper bound for one browser command
	NavRate     float64       // page visits per second, 0 disables throttling

	HTTPTimeout   time.Duration
	ScrapeTimeout time.Duration

	HemisphereStopLabel string

	// Result publishing, disabled when NatsURL is empty
	NatsURL     string
	NatsSubject string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		Headless:    getEnvBool("HEADLESS", true),
		ChromePath:  getEnv("CHROME_PATH", ""),
		RenderWait:  getEnvDuration("RENDER_WAIT", time.Second),
		PageTimeout: getEnvDuration("PAGE_TIMEOUT", 60*time.Second),
		NavRate:     getEnvFloat("NAV_RATE", 5),

		HTTPTimeout:   getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		ScrapeTimeout: getEnvDuration("SCRAPE_TIMEOUT", 3*time.Minute),

		HemisphereStopLabel: getEnv("HEMISPHERE_STOP_LABEL", "Back"),

		NatsURL:     getEnv("NATS_URL", ""),
		NatsSubject: getEnv("NATS_SUBJECT", "mars.scrape.results"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 0 {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
