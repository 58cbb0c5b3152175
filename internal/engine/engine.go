package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-patro/internal/calendar"
	"github.com/tartampluch/go-patro/internal/config"
)

// Feed is one rendering of the configured window.
type Feed struct {
	ICS   []byte // iCalendar feed, one all-day event per day
	Pages []byte // JSON month pages
	Today calendar.Date
	Stats Stats
}

// Stats summarizes a rendering for logs.
type Stats struct {
	Pages int
	Days  int
}

// Generator is the core service turning settings into a rendered feed.
type Generator struct {
	Clock calendar.Clock // Interface for time mocking.
}

// Render lays out the window around today described by s and encodes it.
// The window runs from the first day of the month MonthsBefore months back
// to the last day of the month MonthsAfter months ahead.
func (g *Generator) Render(ctx context.Context, s config.Settings) (Feed, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeySystem, s.System,
	)
	log.DebugContext(ctx, config.MsgRenderStarted)

	now := g.Clock.Now()
	today := calendar.FromTime(now, s.System)

	cfg, err := GridConfigFromSettings(s, today)
	if err != nil {
		return Feed{}, fmt.Errorf("%s: %w", config.ErrSettings, err)
	}

	pages, err := cfg.Generate()
	if err != nil {
		return Feed{}, fmt.Errorf("%s: %w", config.ErrGridGenerate, err)
	}

	// Check for cancellation before the encoding passes
	if err := ctx.Err(); err != nil {
		return Feed{}, err
	}

	ics, err := EncodeICS(pages, now)
	if err != nil {
		return Feed{}, err
	}
	data, err := EncodeJSON(pages)
	if err != nil {
		return Feed{}, err
	}

	stats := Stats{Pages: len(pages)}
	for _, p := range pages {
		stats.Days += len(p.Days(CurrentMonth))
	}

	log.InfoContext(ctx, config.MsgRenderSuccess,
		config.LogKeyToday, today.String(),
		config.LogKeyStart, cfg.StartBound.String(),
		config.LogKeyEnd, cfg.EndBound.String(),
		config.LogKeyBounded, cfg.HasBoundaries,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyPages, stats.Pages),
			slog.Int(config.LogKeyDays, stats.Days),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	return Feed{ICS: ics, Pages: data, Today: today, Stats: stats}, nil
}

// GridConfigFromSettings builds the grid configuration of the window
// around today.
func GridConfigFromSettings(s config.Settings, today calendar.Date) (GridConfig, error) {
	in, err := ParseInDateStyle(s.InDates)
	if err != nil {
		return GridConfig{}, err
	}
	out, err := ParseOutDateStyle(s.OutDates)
	if err != nil {
		return GridConfig{}, err
	}

	month := today.AtStartOfMonth()
	return GridConfig{
		StartBound:     month.MinusMonths(s.MonthsBefore),
		EndBound:       month.PlusMonths(s.MonthsAfter).AtEndOfMonth(),
		FirstDayOfWeek: s.FirstDayOfWeek,
		MaxRowCount:    s.MaxRowCount,
		InDateStyle:    in,
		OutDateStyle:   out,
		HasBoundaries:  s.HasBoundaries,
	}, nil
}
