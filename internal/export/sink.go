package export

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Sink appends one flattened row to a tabular store.
type Sink interface {
	AppendRow(ctx context.Context, fields []string) error
}

// LogSink is the fallback sink used when no external store is configured. It
// writes the row to the log at debug level and never fails.
type LogSink struct{}

func (LogSink) AppendRow(ctx context.Context, fields []string) error {
	log.Debug().Str("row", strings.Join(fields, " | ")).Msg("export row (no sink configured)")
	return nil
}
