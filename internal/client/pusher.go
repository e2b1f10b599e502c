package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	httpapi "tracker/internal/adapters/in/http"
)

// PushInterval is the cadence at which a partner device reports its
// position, independent of whether its live channel is connected.
const PushInterval = 3 * time.Second

// SampleSource yields the next position report. ok is false when there is
// nothing to report this tick.
type SampleSource func() (httpapi.LocationUpdateRequest, bool)

// LocationPusher posts partner position samples to the ingest endpoint on a
// fixed cadence. Transport failures are logged and skipped; the next tick
// pushes again.
type LocationPusher struct {
	client   *http.Client
	url      string
	token    string
	interval time.Duration
	source   SampleSource
	logger   *slog.Logger
}

func NewLocationPusher(url, token string, interval time.Duration, source SampleSource, logger *slog.Logger) *LocationPusher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocationPusher{
		client:   &http.Client{Timeout: requestTimeout},
		url:      url,
		token:    token,
		interval: interval,
		source:   source,
		logger:   logger.With("component", "location-pusher"),
	}
}

// Run pushes on every tick until the context is done.
func (p *LocationPusher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			update, ok := p.source()
			if !ok {
				continue
			}
			if err := p.Push(ctx, update); err != nil {
				p.logger.Warn("push failed", "orderId", update.OrderID, "error", err)
			}
		}
	}
}

// Push sends a single position report.
func (p *LocationPusher) Push(ctx context.Context, update httpapi.LocationUpdateRequest) error {
	body, err := json.Marshal(update)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: httpapi.SessionCookieName, Value: p.token})

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
