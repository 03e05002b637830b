package lexgo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/lexgo/collector"
	"github.com/hupe1980/lexgo/core"
	"github.com/hupe1980/lexgo/postings"
)

// ScoreFunc computes the score of the iterator's current document. The
// scoring formula itself (BM25, TF-IDF, ...) lives outside this core.
type ScoreFunc func(it postings.Iterator) (float32, error)

// SegmentSource is one segment's contribution to a collection pass: a
// positioned postings iterator, the slice locating the segment in the
// composite doc space, and an optional scorer. Score may be nil, in
// which case every hit scores 0.
type SegmentSource struct {
	ID       core.SegmentID
	Iterator postings.Iterator
	Slice    postings.ReaderSlice
	Score    ScoreFunc
}

// Drive drains it, forwarding every document offset by base into c, and
// returns how many documents were delivered.
func Drive(it postings.Iterator, base core.DocID, score ScoreFunc, c collector.Collector) (int, error) {
	var docs int
	for {
		doc, err := it.NextDoc()
		if err != nil {
			return docs, err
		}
		if doc == core.NoMoreDocs {
			return docs, nil
		}

		var s float32
		if score != nil {
			if s, err = score(it); err != nil {
				return docs, err
			}
		}

		if err := c.Collect(base+doc, s); err != nil {
			return docs, err
		}
		docs++
	}
}

// Executor drives collection passes over index segments and replays
// cached passes, with logging and metrics.
type Executor struct {
	logger  *Logger
	metrics MetricsCollector
}

// NewExecutor creates an Executor. By default logging and metrics are
// disabled; use WithLogger and WithMetricsCollector to enable them.
func NewExecutor(optFns ...Option) *Executor {
	opts := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Executor{
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
}

// Collect drives the segments in order into a single collector, mapping
// each segment's docs into the composite doc space. Hits arrive at the
// collector in increasing composite doc order when the segment iterators
// are sorted and the slices are disjoint and ordered. The context is
// checked between segments; there is no finer-grained cancellation.
func (e *Executor) Collect(ctx context.Context, segments []SegmentSource, c collector.Collector) error {
	started := time.Now()

	var docs int
	var err error
	for _, seg := range segments {
		if err = ctx.Err(); err != nil {
			break
		}
		var n int
		n, err = Drive(seg.Iterator, seg.Slice.Start, seg.Score, c)
		docs += n
		if err != nil {
			break
		}
	}

	e.metrics.RecordCollect(len(segments), docs, time.Since(started), err)
	e.logger.LogCollect(ctx, len(segments), docs, err)

	return err
}

// CollectParallel drives each segment concurrently. Collectors are not
// safe for concurrent use, so every segment gets its own collector from
// newCollector; merging the per-segment results is up to the caller.
// The first segment error cancels the remaining ones.
func (e *Executor) CollectParallel(ctx context.Context, segments []SegmentSource, newCollector func(i int) collector.Collector) error {
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	counts := make([]int, len(segments))

	for i, seg := range segments {
		i, seg := i, seg
		c := newCollector(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := Drive(seg.Iterator, seg.Slice.Start, seg.Score, c)
			counts[i] = n
			return err
		})
	}

	err := g.Wait()

	var docs int
	for _, n := range counts {
		docs += n
	}

	e.metrics.RecordCollect(len(segments), docs, time.Since(started), err)
	e.logger.LogCollect(ctx, len(segments), docs, err)

	return err
}

// Replay delivers a recorded pass into c. It is a thin wrapper around
// CachingCollector.Replay adding metrics and logging.
func (e *Executor) Replay(ctx context.Context, cc *collector.CachingCollector, c collector.Collector) error {
	started := time.Now()
	err := cc.Replay(c)
	e.metrics.RecordReplay(time.Since(started), err)
	e.logger.LogReplay(ctx, cc.NumCached(), err)
	return err
}
