// Package collector provides the hit sinks of a collection pass and the
// caching decorator that records a pass for replay.
//
// # Sinks
//
// A Collector accepts one (doc, score) pair per matching document and
// declares whether it tolerates out-of-order delivery. Shipped sinks:
//
//   - NoopCollector: discards hits
//   - BitmapCollector: accumulates doc ids into a roaring bitmap
//   - TopKCollector: keeps the k best-scored hits
//
// # Caching and Replay
//
// CachingCollector wraps any sink, forwards every hit to it untouched,
// and records the pass into memory-bounded blocks:
//
//	cc := collector.NewCachingCollector(sink, true, 1<<20)
//	... drive the query once, collecting into cc ...
//	if cc.IsCached() {
//	    _ = cc.Replay(otherSink)
//	}
//
// Exceeding the byte ceiling is graceful: recording stops, forwarding
// continues, and Replay reports ErrNotCached. Replaying an out-of-order
// pass into a sink that requires in-order delivery reports
// ErrReplayOutOfOrder.
//
// Collectors are single-writer: collection and replay on one instance
// must not overlap in time, and no instance may be driven from more than
// one goroutine at once.
package collector
