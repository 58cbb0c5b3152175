// Package worker keeps the served feed current by re-rendering it on a
// fixed schedule.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/tartampluch/go-patro/internal/config"
	"github.com/tartampluch/go-patro/internal/engine"
)

// Renderer produces a feed from settings.
type Renderer interface {
	Render(ctx context.Context, s config.Settings) (engine.Feed, error)
}

// Publisher receives every successful rendering.
type Publisher interface {
	Update(ics, pages []byte)
}

// Refresher renders the feed once at start and then every Interval.
type Refresher struct {
	Renderer  Renderer
	Publisher Publisher
	Settings  config.Settings
	// Interval overrides Settings.RefreshInterval when positive.
	Interval time.Duration
}

// Run blocks until ctx is cancelled. Failed renderings are logged and the
// previously published feed stays in place.
func (r *Refresher) Run(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	_ = r.Refresh(ctx)

	interval := r.Interval
	if interval <= 0 {
		interval = r.Settings.RefreshInterval()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, interval)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-ticker.C:
			_ = r.Refresh(ctx)
		}
	}
}

// Refresh renders once and publishes the result.
func (r *Refresher) Refresh(ctx context.Context) error {
	feed, err := r.Renderer.Render(ctx, r.Settings)
	if err != nil {
		slog.Error(config.ErrRenderFailed,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyError, err)
		return err
	}
	r.Publisher.Update(feed.ICS, feed.Pages)
	return nil
}
