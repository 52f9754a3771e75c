package molgo

import "log/slog"

// defaultSelectionCacheSize bounds the selection result cache unless
// WithSelectionCacheSize overrides it.
const defaultSelectionCacheSize = 128

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	cacheDisabled    bool
	cacheMaxEntries  int
}

// Option configures engine behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &molgo.BasicMetricsCollector{}
//	eng, _ := molgo.New(s, molgo.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithoutSelectionCache disables the version-keyed selection result cache.
// Every Select call then re-evaluates its rule tree.
func WithoutSelectionCache() Option {
	return func(o *options) {
		o.cacheDisabled = true
	}
}

// WithSelectionCacheSize bounds the selection result cache to n entries.
// Stale-version entries are evicted first. n <= 0 disables the cache.
func WithSelectionCacheSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.cacheDisabled = true
			return
		}
		o.cacheMaxEntries = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		cacheMaxEntries:  defaultSelectionCacheSize,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
