// Package runlog emits the per-run structured log events shared by the
// fetcher and the pipeline: one event per failed operation or stage
// transition, always correlated by URL and run id.
package runlog

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Error categories used across the pipeline. They are log fields rather than
// error types; callers decide separately whether a category is fatal.
const (
	CategoryValidation = "ValidationError"
	CategoryFetch      = "FetchError"
	CategoryProcessing = "ProcessingError"
)

// Recorder writes run-scoped events through a zerolog logger. The zero value
// is not usable; construct with Default or New.
type Recorder struct {
	l zerolog.Logger
}

// Default returns a Recorder bound to the global logger.
func Default() *Recorder {
	return &Recorder{l: log.Logger}
}

// New returns a Recorder bound to the given logger. Tests pass a logger backed
// by a buffer to count emitted events.
func New(l zerolog.Logger) *Recorder {
	return &Recorder{l: l}
}

// Error records one failed operation for a run.
func (r *Recorder) Error(url, runID, category, message string) {
	r.l.Error().
		Str("url", url).
		Str("run", runID).
		Str("category", category).
		Msg(message)
}

// ErrorTrace is Error with a captured stack trace attached, used by the
// pipeline's top-level fault boundary.
func (r *Recorder) ErrorTrace(url, runID, category, message string, trace []byte) {
	r.l.Error().
		Str("url", url).
		Str("run", runID).
		Str("category", category).
		Bytes("trace", trace).
		Msg(message)
}

// Operation records a stage outcome such as "Extraction Completed".
func (r *Recorder) Operation(url, runID, operation, status, message string) {
	r.l.Info().
		Str("url", url).
		Str("run", runID).
		Str("operation", operation).
		Str("status", status).
		Msg(message)
}

// OperationDuration is Operation with an elapsed wall-clock duration in
// milliseconds.
func (r *Recorder) OperationDuration(url, runID, operation, status, message string, durationMs int64) {
	r.l.Info().
		Str("url", url).
		Str("run", runID).
		Str("operation", operation).
		Str("status", status).
		Int64("duration_ms", durationMs).
		Msg(message)
}
