package lexgo

import (
	"context"
	"testing"

	"github.com/hupe1980/lexgo/collector"
	"github.com/hupe1980/lexgo/core"
	"github.com/hupe1980/lexgo/postings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	docs   []core.DocID
	scores []float32
}

func (s *captureSink) Collect(doc core.DocID, score float32) error {
	s.docs = append(s.docs, doc)
	s.scores = append(s.scores, score)
	return nil
}

func (s *captureSink) AcceptsDocsOutOfOrder() bool { return false }

func freqScore(it postings.Iterator) (float32, error) {
	freq, err := it.Freq()
	if err != nil {
		return 0, err
	}
	return float32(freq), nil
}

func makeSegments(locals [][]core.DocID, lengths []uint32) []SegmentSource {
	segments := make([]SegmentSource, len(locals))
	var start core.DocID
	for i, docs := range locals {
		segments[i] = SegmentSource{
			ID:       core.SegmentID(i),
			Iterator: postings.NewDocsIterator(docs),
			Slice:    postings.ReaderSlice{Start: start, Length: lengths[i]},
		}
		start += core.DocID(lengths[i])
	}
	return segments
}

func TestDrive(t *testing.T) {
	it := postings.NewListIterator([]postings.Posting{
		{Doc: 0, Freq: 3},
		{Doc: 2, Freq: 1},
	})

	sink := &captureSink{}
	n, err := Drive(it, 10, freqScore, sink)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []core.DocID{10, 12}, sink.docs)
	assert.Equal(t, []float32{3, 1}, sink.scores)
}

func TestExecutor_Collect(t *testing.T) {
	segments := makeSegments([][]core.DocID{
		{0, 3},
		{1},
		{0, 2, 4},
	}, []uint32{5, 4, 6})

	metrics := &BasicMetricsCollector{}
	exec := NewExecutor(WithMetricsCollector(metrics))

	sink := &captureSink{}
	cc := collector.NewCachingCollector(sink, false, 1<<20)

	ctx := context.Background()
	require.NoError(t, exec.Collect(ctx, segments, cc))

	want := []core.DocID{0, 3, 6, 9, 11, 13}
	assert.Equal(t, want, sink.docs)

	// The recorded pass replays into a fresh sink.
	replay := &captureSink{}
	require.NoError(t, exec.Replay(ctx, cc, replay))
	assert.Equal(t, want, replay.docs)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.CollectCount)
	assert.Equal(t, int64(6), stats.CollectDocs)
	assert.Equal(t, int64(1), stats.ReplayCount)
	assert.Equal(t, int64(0), stats.CollectErrors)
}

func TestExecutor_CollectParallel(t *testing.T) {
	segments := makeSegments([][]core.DocID{
		{0, 1},
		{2},
		{0, 3},
	}, []uint32{4, 4, 8})

	exec := NewExecutor()

	collectors := make([]*collector.BitmapCollector, len(segments))
	err := exec.CollectParallel(context.Background(), segments, func(i int) collector.Collector {
		collectors[i] = collector.NewBitmapCollector()
		return collectors[i]
	})
	require.NoError(t, err)

	union := collectors[0].Bitmap()
	for _, c := range collectors[1:] {
		union.Or(c.Bitmap())
	}

	assert.Equal(t, uint64(5), union.GetCardinality())
	for _, doc := range []uint32{0, 1, 6, 8, 11} {
		assert.True(t, union.Contains(doc), "doc %d", doc)
	}
}

func TestExecutor_CollectCanceled(t *testing.T) {
	segments := makeSegments([][]core.DocID{{0}}, []uint32{2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := NewExecutor(WithLogger(NoopLogger()))
	err := exec.Collect(ctx, segments, collector.NewNoopCollector(false))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_ReplayAborted(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	exec := NewExecutor(WithMetricsCollector(metrics))

	cc := collector.NewRecordingCollector(false, false, 2) // below one doc
	require.NoError(t, cc.Collect(1, 0))
	require.False(t, cc.IsCached())

	err := exec.Replay(context.Background(), cc, collector.NewNoopCollector(true))
	assert.ErrorIs(t, err, collector.ErrNotCached)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.ReplayErrors)
}
