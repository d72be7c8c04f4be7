package pipeline

import "sync/atomic"

// Stats accumulates process-wide run counters. Counters are atomic so
// concurrent runs can share one instance; inject it rather than reading
// ambient globals.
type Stats struct {
	Processed atomic.Int64
	Succeeded atomic.Int64
	Failed    atomic.Int64
}

// Snapshot returns a consistent-enough view for logging.
func (s *Stats) Snapshot() (processed, succeeded, failed int64) {
	return s.Processed.Load(), s.Succeeded.Load(), s.Failed.Load()
}
