package provgraph

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/provgraph/codec"
	"github.com/hupe1980/provgraph/core"
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	indexKeys        []string
	walkConcurrency  int
	firstPathID      core.PathID
}

// Option configures a Store.
type Option func(*options)

// WithIndex declares secondary indices up front, before any vertex exists.
// Declaring indices on the keys used by bulk insertion turns vertex lookup
// from a full scan into a posting-list lookup.
func WithIndex(keys ...string) Option {
	return func(o *options) {
		o.indexKeys = append(o.indexKeys, keys...)
	}
}

// WithWalkConcurrency bounds the number of path walks WalkPaths runs at once.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithWalkConcurrency(n int) Option {
	return func(o *options) {
		o.walkConcurrency = n
	}
}

// WithFirstPathID sets the first path id the store hands out (default 1).
func WithFirstPathID(id core.PathID) Option {
	return func(o *options) {
		o.firstPathID = id
	}
}

// WithCodec configures the codec used by Export.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &provgraph.BasicMetricsCollector{}
//	s := provgraph.New(provgraph.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Chains: %d, Avg latency: %dns\n", stats.ChainInsertCount, stats.ChainInsertAvgNanos)
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
//
// Example with JSON logging:
//
//	logger := provgraph.NewJSONLogger(slog.LevelDebug)
//	s := provgraph.New(provgraph.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		firstPathID:      core.FirstPathID,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.walkConcurrency <= 0 {
		o.walkConcurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
