package provgraph

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordChainInsert is called after each chain insertion.
	RecordChainInsert(duration time.Duration, err error)

	// RecordBulkInsert is called after each bulk insertion. count is the
	// number of chains attempted, failed the number that failed.
	RecordBulkInsert(count, failed int, duration time.Duration)

	// RecordWalk is called after each walk. paths is the number of path ids walked.
	RecordWalk(paths int, duration time.Duration, err error)

	// RecordLookup is called after each vertex lookup.
	RecordLookup(hit bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordChainInsert(time.Duration, error)   {}
func (NoopMetricsCollector) RecordBulkInsert(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordWalk(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordLookup(bool)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ChainInsertCount      atomic.Int64
	ChainInsertErrors     atomic.Int64
	ChainInsertTotalNanos atomic.Int64
	BulkInsertCount       atomic.Int64
	BulkInsertChains      atomic.Int64
	BulkInsertFailed      atomic.Int64
	WalkCount             atomic.Int64
	WalkPaths             atomic.Int64
	WalkErrors            atomic.Int64
	WalkTotalNanos        atomic.Int64
	LookupHits            atomic.Int64
	LookupMisses          atomic.Int64
}

// RecordChainInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChainInsert(duration time.Duration, err error) {
	b.ChainInsertCount.Add(1)
	b.ChainInsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ChainInsertErrors.Add(1)
	}
}

// RecordBulkInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBulkInsert(count, failed int, _ time.Duration) {
	b.BulkInsertCount.Add(1)
	b.BulkInsertChains.Add(int64(count))
	b.BulkInsertFailed.Add(int64(failed))
}

// RecordWalk implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWalk(paths int, duration time.Duration, err error) {
	b.WalkCount.Add(1)
	b.WalkPaths.Add(int64(paths))
	b.WalkTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WalkErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(hit bool) {
	if hit {
		b.LookupHits.Add(1)
	} else {
		b.LookupMisses.Add(1)
	}
}

// MetricsStats is a point-in-time copy of BasicMetricsCollector.
type MetricsStats struct {
	ChainInsertCount    int64
	ChainInsertErrors   int64
	ChainInsertAvgNanos int64
	BulkInsertCount     int64
	BulkInsertChains    int64
	BulkInsertFailed    int64
	WalkCount           int64
	WalkPaths           int64
	WalkErrors          int64
	WalkAvgNanos        int64
	LookupHits          int64
	LookupMisses        int64
}

// GetStats returns the current statistics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		ChainInsertCount:  b.ChainInsertCount.Load(),
		ChainInsertErrors: b.ChainInsertErrors.Load(),
		BulkInsertCount:   b.BulkInsertCount.Load(),
		BulkInsertChains:  b.BulkInsertChains.Load(),
		BulkInsertFailed:  b.BulkInsertFailed.Load(),
		WalkCount:         b.WalkCount.Load(),
		WalkPaths:         b.WalkPaths.Load(),
		WalkErrors:        b.WalkErrors.Load(),
		LookupHits:        b.LookupHits.Load(),
		LookupMisses:      b.LookupMisses.Load(),
	}
	if stats.ChainInsertCount > 0 {
		stats.ChainInsertAvgNanos = b.ChainInsertTotalNanos.Load() / stats.ChainInsertCount
	}
	if stats.WalkCount > 0 {
		stats.WalkAvgNanos = b.WalkTotalNanos.Load() / stats.WalkCount
	}
	return stats
}

// Reset clears all counters.
func (b *BasicMetricsCollector) Reset() {
	b.ChainInsertCount.Store(0)
	b.ChainInsertErrors.Store(0)
	b.ChainInsertTotalNanos.Store(0)
	b.BulkInsertCount.Store(0)
	b.BulkInsertChains.Store(0)
	b.BulkInsertFailed.Store(0)
	b.WalkCount.Store(0)
	b.WalkPaths.Store(0)
	b.WalkErrors.Store(0)
	b.WalkTotalNanos.Store(0)
	b.LookupHits.Store(0)
	b.LookupMisses.Store(0)
}
