package molgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordParse is called after each selection-string parse.
	// err is nil if the input was well formed.
	RecordParse(duration time.Duration, err error)

	// RecordSelect is called after each selection evaluation.
	// matches is the number of matching rows, cached reports a cache hit.
	RecordSelect(matches int, cached bool, duration time.Duration, err error)

	// RecordEdit is called after each structural edit.
	// op names the operation (e.g. "remove_atoms").
	RecordEdit(op string, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordParse(time.Duration, error)             {}
func (NoopMetricsCollector) RecordSelect(int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordEdit(string, time.Duration)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ParseCount       atomic.Int64
	ParseErrors      atomic.Int64
	SelectCount      atomic.Int64
	SelectErrors     atomic.Int64
	SelectCacheHits  atomic.Int64
	SelectTotalNanos atomic.Int64
	EditCount        atomic.Int64
	EditTotalNanos   atomic.Int64
}

// RecordParse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParse(duration time.Duration, err error) {
	b.ParseCount.Add(1)
	if err != nil {
		b.ParseErrors.Add(1)
	}
}

// RecordSelect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelect(matches int, cached bool, duration time.Duration, err error) {
	b.SelectCount.Add(1)
	b.SelectTotalNanos.Add(duration.Nanoseconds())
	if cached {
		b.SelectCacheHits.Add(1)
	}
	if err != nil {
		b.SelectErrors.Add(1)
	}
}

// RecordEdit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEdit(op string, duration time.Duration) {
	b.EditCount.Add(1)
	b.EditTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ParseCount:      b.ParseCount.Load(),
		ParseErrors:     b.ParseErrors.Load(),
		SelectCount:     b.SelectCount.Load(),
		SelectErrors:    b.SelectErrors.Load(),
		SelectCacheHits: b.SelectCacheHits.Load(),
		SelectAvgNanos:  b.getAvgSelectNanos(),
		EditCount:       b.EditCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSelectNanos() int64 {
	count := b.SelectCount.Load()
	if count == 0 {
		return 0
	}
	return b.SelectTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ParseCount      int64
	ParseErrors     int64
	SelectCount     int64
	SelectErrors    int64
	SelectCacheHits int64
	SelectAvgNanos  int64
	EditCount       int64
}
