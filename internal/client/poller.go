package client

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Cadences of the polling fallback. The tracking page refreshes often, the
// vendor and partner dashboards are heavier views and refresh rarely.
const (
	TrackingInterval  = 5 * time.Second
	DashboardInterval = 30 * time.Second

	requestTimeout = 10 * time.Second
)

// Poller re-fetches a read endpoint on a fixed cadence and hands the body to
// a callback whenever the response changed. It is the fallback path for
// clients whose websocket channel is down, so a single failed fetch never
// stops the loop.
type Poller struct {
	client   *http.Client
	url      string
	interval time.Duration
	onUpdate func(body []byte)
	logger   *slog.Logger

	last []byte
}

func NewPoller(url string, interval time.Duration, onUpdate func(body []byte), logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		client:   &http.Client{Timeout: requestTimeout},
		url:      url,
		interval: interval,
		onUpdate: onUpdate,
		logger:   logger.With("component", "poller"),
	}
}

// Run fetches immediately, then on every tick until the context is done.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	body, err := p.fetch(ctx)
	if err != nil {
		p.logger.Warn("poll failed", "url", p.url, "error", err)
		return
	}
	if bytes.Equal(body, p.last) {
		return
	}
	p.last = body
	p.onUpdate(body)
}

func (p *Poller) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}
