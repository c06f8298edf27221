package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/logger"
	"github.com/rocket3855/Mission-to-Mars-Challenge/pkg/models"
)

const (
	DefaultSubject = "mars.scrape.results"
	flushTimeout   = 5 * time.Second
)

// Publisher announces finished scrapes to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, result *models.ScrapeResult) error
	Close()
}

// New connects to NATS, or returns a no-op publisher when url is empty.
func New(url, subject string) (Publisher, error) {
	if url == "" {
		logger.Log.Info().Msg("NATS_URL not set, result publishing disabled")
		return Nop{}, nil
	}
	return NewNATS(url, subject)
}

type NATSPublisher struct {
	nc      *nats.Conn
	subject string
}

func NewNATS(url, subject string) (*NATSPublisher, error) {
	log := logger.Log

	if subject == "" {
		subject = DefaultSubject
	}

	opts := []nats.Option{
		nats.Name("mars-scraper"),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Warn().Str("url", nc.ConnectedUrl()).Msg("nats reconnected")
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Error().Err(err).Msg("nats disconnected")
			}
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	log.Info().Str("url", url).Str("subject", subject).Msg("nats connected")
	return &NATSPublisher{nc: nc, subject: subject}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, result *models.ScrapeResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := p.nc.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish to %s: %w", p.subject, err)
	}

	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()

	if err := p.nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	logger.Log.Debug().Str("subject", p.subject).Str("run_id", result.RunID).Int("bytes", len(payload)).Msg("scrape result published")
	return nil
}

func (p *NATSPublisher) Close() {
	p.nc.Close()
}

// Nop discards results.
type Nop struct{}

func (Nop) Publish(context.Context, *models.ScrapeResult) error { return nil }

func (Nop) Close() {}
