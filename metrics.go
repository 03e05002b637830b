package lexgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCollect is called after each collection pass. segments is
	// the number of segments driven, docs the number of hits delivered,
	// duration is the total time taken, err is nil if successful.
	RecordCollect(segments, docs int, duration time.Duration, err error)

	// RecordReplay is called after each cache replay.
	RecordReplay(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCollect(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordReplay(time.Duration, error)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CollectCount      atomic.Int64
	CollectErrors     atomic.Int64
	CollectDocs       atomic.Int64
	CollectTotalNanos atomic.Int64
	ReplayCount       atomic.Int64
	ReplayErrors      atomic.Int64
	ReplayTotalNanos  atomic.Int64
}

// RecordCollect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCollect(segments, docs int, duration time.Duration, err error) {
	b.CollectCount.Add(1)
	b.CollectDocs.Add(int64(docs))
	b.CollectTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CollectErrors.Add(1)
	}
}

// RecordReplay implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReplay(duration time.Duration, err error) {
	b.ReplayCount.Add(1)
	b.ReplayTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReplayErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CollectCount:    b.CollectCount.Load(),
		CollectErrors:   b.CollectErrors.Load(),
		CollectDocs:     b.CollectDocs.Load(),
		CollectAvgNanos: b.getAvgCollectNanos(),
		ReplayCount:     b.ReplayCount.Load(),
		ReplayErrors:    b.ReplayErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCollectNanos() int64 {
	count := b.CollectCount.Load()
	if count == 0 {
		return 0
	}
	return b.CollectTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CollectCount    int64
	CollectErrors   int64
	CollectDocs     int64
	CollectAvgNanos int64
	ReplayCount     int64
	ReplayErrors    int64
}
