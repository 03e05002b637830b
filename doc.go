// Package lexgo provides the query-execution core of an embedded
// full-text search engine: postings iteration across independently-built
// index segments, and memory-bounded caching of collection passes.
//
// # Merged Iteration
//
// A term's postings live per segment. postings.MergedIterator presents
// them as one iterator over the composite doc space:
//
//	m := postings.NewMergedIterator(owner, numSegments)
//	m.Reset(subs, numSegments)
//
// # Collection and Replay
//
// An Executor drives per-segment iterators into a collector.Collector.
// Wrapping the sink in a collector.CachingCollector records the pass so
// it can be replayed into further sinks without re-running the query:
//
//	exec := lexgo.NewExecutor()
//	cc := collector.NewCachingCollector(sink, true, 1<<20)
//	err := exec.Collect(ctx, segments, cc)
//	...
//	err = exec.Replay(ctx, cc, otherSink)
//
// # Concurrency
//
// Iterators and collectors are single-writer. Executor.CollectParallel
// runs disjoint segments concurrently by giving each its own collector.
package lexgo
