// Package app wires the fetcher, extraction pipeline and export sink from a
// Config and drives runs for a list of URLs.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gostryker/internal/export"
	"github.com/hyperifyio/gostryker/internal/fetch"
	"github.com/hyperifyio/gostryker/internal/pipeline"
)

// ErrAllRunsFailed is returned by Run when every URL ended in a failure
// result, so the CLI can exit non-zero.
var ErrAllRunsFailed = fmt.Errorf("all runs failed")

type App struct {
	cfg    Config
	stats  *pipeline.Stats
	pipe   *pipeline.Pipeline
	closer io.Closer
}

// New builds the application: export sink first (Sheets when configured, CSV
// as local fallback, log-only otherwise), then the retrying fetcher, then the
// pipeline sharing one stats aggregate.
func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{cfg: cfg, stats: &pipeline.Stats{}}

	sink, err := a.buildSink(ctx)
	if err != nil {
		return nil, err
	}

	fetcher := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       cfg.MaxRetries,
		PerRequestTimeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	a.pipe = &pipeline.Pipeline{
		Fetcher: fetcher,
		Sink:    sink,
		Stats:   a.stats,
	}
	return a, nil
}

func (a *App) buildSink(ctx context.Context) (export.Sink, error) {
	switch {
	case a.cfg.SheetsCredentials != "" && a.cfg.SpreadsheetID != "":
		name := a.cfg.SheetName
		if name == "" {
			name = "Sheet1"
		}
		sink, err := export.NewSheetsSink(ctx, a.cfg.SheetsCredentials, a.cfg.SpreadsheetID, name)
		if err != nil {
			return nil, fmt.Errorf("sheets sink: %w", err)
		}
		log.Info().Str("spreadsheet", a.cfg.SpreadsheetID).Str("sheet", name).Msg("exporting to Google Sheets")
		return sink, nil
	case a.cfg.CSVPath != "":
		sink, err := export.NewCSVSink(a.cfg.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("csv sink: %w", err)
		}
		a.closer = sink
		log.Info().Str("path", a.cfg.CSVPath).Msg("exporting to CSV file")
		return sink, nil
	default:
		log.Warn().Msg("no export sink configured; rows go to the log only")
		return export.LogSink{}, nil
	}
}

// Close releases sink resources.
func (a *App) Close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// Run processes the URLs sequentially and writes one JSON result per URL to
// out. It returns ErrAllRunsFailed when no URL succeeded.
func (a *App) Run(ctx context.Context, urls []string, out io.Writer) error {
	enc := json.NewEncoder(out)
	for _, u := range urls {
		res := a.pipe.ProcessURL(ctx, u, "")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	processed, succeeded, failed := a.stats.Snapshot()
	log.Info().
		Int64("processed", processed).
		Int64("succeeded", succeeded).
		Int64("failed", failed).
		Msg("all runs finished")

	if processed > 0 && succeeded == 0 {
		return ErrAllRunsFailed
	}
	return nil
}
