// Package pipeline orchestrates one extraction run: validate the URL, fetch
// the page, run the company/contact/product extractors in order, export the
// flattened record and report a terminal result. Internal faults never escape
// a run; they are converted into a failure result.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"runtime/debug"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/hyperifyio/gostryker/internal/export"
	"github.com/hyperifyio/gostryker/internal/extract"
	"github.com/hyperifyio/gostryker/internal/model"
	"github.com/hyperifyio/gostryker/internal/runlog"
)

// Fetcher retrieves raw page content for a URL. An error means the attempt
// budget is exhausted and the run cannot proceed.
type Fetcher interface {
	Fetch(ctx context.Context, url, runID string) ([]byte, error)
}

// Result is the terminal outcome of one run: success with data and duration,
// or failure with a human-readable reason.
type Result struct {
	Success    bool               `json:"success"`
	Data       *model.CompanyView `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	DurationMs int64              `json:"duration_ms,omitempty"`
}

// Pipeline wires the fetcher, the export sink and shared counters. One
// Pipeline serves any number of concurrent runs; per-run state is created
// fresh in ProcessURL.
type Pipeline struct {
	Fetcher Fetcher
	Sink    export.Sink
	Stats   *Stats
	Log     *runlog.Recorder
}

func (p *Pipeline) stats() *Stats {
	if p.Stats == nil {
		p.Stats = &Stats{}
	}
	return p.Stats
}

func (p *Pipeline) log() *runlog.Recorder {
	if p.Log != nil {
		return p.Log
	}
	return runlog.Default()
}

func (p *Pipeline) fail(url, runID, reason string) Result {
	p.stats().Processed.Add(1)
	p.stats().Failed.Add(1)
	p.log().Operation(url, runID, "Extraction", "Failed", reason)
	return Result{Success: false, Error: reason}
}

// ValidURL reports whether rawURL has both a scheme and a host.
func ValidURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// ProcessURL runs the full extraction state machine for one URL. An empty
// runID is replaced with a generated one; the id is used only for log
// correlation.
func (p *Pipeline) ProcessURL(ctx context.Context, rawURL, runID string) (res Result) {
	if runID == "" {
		runID = uuid.NewString()
	}
	start := time.Now()
	state := NewRunState(runID, rawURL)

	// Fault boundary: an unexpected panic in any stage becomes a logged
	// ProcessingError failure instead of escaping the run.
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("error processing URL: %v", r)
			p.log().ErrorTrace(rawURL, runID, runlog.CategoryProcessing, msg, debug.Stack())
			p.stats().Processed.Add(1)
			p.stats().Failed.Add(1)
			res = Result{Success: false, Error: msg}
		}
	}()

	state.Update(StageValidating)
	if !ValidURL(rawURL) {
		p.log().Error(rawURL, runID, runlog.CategoryValidation, "invalid URL format")
		p.stats().Processed.Add(1)
		p.stats().Failed.Add(1)
		return Result{Success: false, Error: "invalid URL format"}
	}

	state.Update(StageStarting)

	state.Update(StageFetching)
	content, err := p.Fetcher.Fetch(ctx, rawURL, runID)
	if err != nil {
		return p.fail(rawURL, runID, "failed to extract data from URL")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		p.log().Error(rawURL, runID, runlog.CategoryProcessing, fmt.Sprintf("parse HTML: %v", err))
		return p.fail(rawURL, runID, "failed to extract data from URL")
	}

	company := model.NewCompany(rawURL)
	strategy := extract.ForURL(rawURL)

	state.Update(StageCompany)
	strategy.ExtractCompany(doc, rawURL, company)

	state.Update(StageContact)
	extract.Contacts(doc, content, company)

	state.Update(StageProduct)
	strategy.ExtractProduct(doc, rawURL, company, runID)

	// Export is best-effort: a sink failure is logged but never fails the run.
	if p.Sink != nil {
		if err := p.Sink.AppendRow(ctx, export.Row(company)); err != nil {
			p.log().Error(rawURL, runID, runlog.CategoryProcessing, fmt.Sprintf("export row: %v", err))
		}
	}

	state.Update(StageCompleted)
	duration := time.Since(start).Milliseconds()
	p.log().OperationDuration(rawURL, runID, "Extraction", "Completed", "extraction completed successfully", duration)
	p.stats().Processed.Add(1)
	p.stats().Succeeded.Add(1)

	view := company.View()
	return Result{Success: true, Data: &view, DurationMs: duration}
}
