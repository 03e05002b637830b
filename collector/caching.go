package collector

import (
	"errors"

	"github.com/hupe1980/lexgo/core"
)

const (
	// initialBlockSize is the capacity of the first cache block.
	initialBlockSize = 128

	// blockGrowthFactor is the geometric growth applied to each
	// subsequent block, before the remaining-budget cap.
	blockGrowthFactor = 8

	bytesPerDoc   = 4
	bytesPerScore = 4
)

var (
	// ErrNotCached is returned by Replay when the cache was cleared
	// because the RAM ceiling was exceeded, or nothing was collected.
	ErrNotCached = errors.New("collector: cannot replay, cache was cleared or nothing was collected")

	// ErrReplayOutOfOrder is returned by Replay when the original pass
	// collected out of order and the replay collector requires in-order
	// delivery.
	ErrReplayOutOfOrder = errors.New("collector: cannot replay out-of-order cache into in-order collector")
)

// Compile time check to ensure CachingCollector satisfies Collector.
var _ Collector = (*CachingCollector)(nil)

// CachingCollector forwards every hit to a wrapped collector and
// additionally records the doc ids (and optionally scores) of the pass,
// up to a RAM ceiling. A successfully recorded pass can be replayed into
// other collectors without re-running the query.
//
// Recording never interferes with forwarding: once the ceiling is
// exceeded the accumulated blocks are discarded and Collect degrades to
// pure pass-through for the rest of the pass. That is expected
// degradation, not an error; it surfaces later as ErrNotCached on Replay.
//
// Doc ids are stored delta-encoded in growable fixed-capacity blocks.
// Each new block grows geometrically but never beyond what the remaining
// byte budget affords, so a ceiling sized for exactly K documents caches
// exactly K documents.
type CachingCollector struct {
	other       Collector
	cacheScores bool
	maxBytes    float64
	outOfOrder  bool

	docBlocks   [][]core.DocID
	scoreBlocks [][]float32
	curDocs     []core.DocID
	curScores   []float32
	upto        int
	lastDoc     core.DocID
	bytesUsed   int64
	cached      bool
	collected   bool
}

// NewCachingCollector wraps other and records up to maxBytes worth of
// hits. Scores are recorded only if cacheScores is set. maxBytes may be
// fractional; a budget below one document aborts caching on the first
// hit. The out-of-order tolerance is inherited from other.
func NewCachingCollector(other Collector, cacheScores bool, maxBytes float64) *CachingCollector {
	return &CachingCollector{
		other:       other,
		cacheScores: cacheScores,
		maxBytes:    maxBytes,
		outOfOrder:  other.AcceptsDocsOutOfOrder(),
		cached:      true,
	}
}

// NewRecordingCollector creates a CachingCollector with no live
// downstream consumer: hits are only recorded, for later replay.
// acceptDocsOutOfOrder declares the ordering contract of the pass that
// will drive it.
func NewRecordingCollector(acceptDocsOutOfOrder, cacheScores bool, maxBytes float64) *CachingCollector {
	return NewCachingCollector(NewNoopCollector(acceptDocsOutOfOrder), cacheScores, maxBytes)
}

// Collect implements Collector. The hit is forwarded to the wrapped
// collector unconditionally, then recorded if caching is still live.
func (cc *CachingCollector) Collect(doc core.DocID, score float32) error {
	if err := cc.other.Collect(doc, score); err != nil {
		return err
	}

	if !cc.cached {
		return nil
	}

	cc.collected = true

	if cc.upto == len(cc.curDocs) {
		if !cc.allocBlock() {
			cc.abort()
			return nil
		}
	}

	if cc.upto == 0 {
		cc.curDocs[0] = doc
	} else {
		cc.curDocs[cc.upto] = doc - cc.lastDoc
	}
	if cc.cacheScores {
		cc.curScores[cc.upto] = score
	}
	cc.lastDoc = doc
	cc.upto++

	return nil
}

// AcceptsDocsOutOfOrder implements Collector, making a CachingCollector
// indistinguishable from any other sink when wrapped itself.
func (cc *CachingCollector) AcceptsDocsOutOfOrder() bool {
	return cc.outOfOrder
}

// IsCached reports whether the recorded pass is (still) replayable.
func (cc *CachingCollector) IsCached() bool {
	return cc.cached
}

// NumCached returns how many documents are currently recorded.
func (cc *CachingCollector) NumCached() int {
	n := cc.upto
	for _, b := range cc.docBlocks {
		n += len(b)
	}
	return n
}

// Replay delivers the recorded pass to other, in original recording
// order, with scores if they were recorded. It may be called any number
// of times once the originating pass has stopped collecting; it does not
// mutate the cache.
//
// Replay fails with ErrNotCached if recording aborted or never happened,
// and with ErrReplayOutOfOrder if the original pass was allowed to
// collect out of order while other requires in-order delivery.
func (cc *CachingCollector) Replay(other Collector) error {
	if !cc.cached || !cc.collected {
		return ErrNotCached
	}
	if cc.outOfOrder && !other.AcceptsDocsOutOfOrder() {
		return ErrReplayOutOfOrder
	}

	for i, docs := range cc.docBlocks {
		var scores []float32
		if cc.cacheScores {
			scores = cc.scoreBlocks[i]
		}
		if err := replayBlock(other, docs, scores, len(docs)); err != nil {
			return err
		}
	}

	var scores []float32
	if cc.cacheScores {
		scores = cc.curScores
	}
	return replayBlock(other, cc.curDocs, scores, cc.upto)
}

// allocBlock seals the current block and allocates the next one. It
// returns false when the remaining budget does not fit a single
// additional document.
func (cc *CachingCollector) allocBlock() bool {
	next := initialBlockSize
	if cc.curDocs != nil {
		cc.docBlocks = append(cc.docBlocks, cc.curDocs)
		if cc.cacheScores {
			cc.scoreBlocks = append(cc.scoreBlocks, cc.curScores)
		}
		next = len(cc.curDocs) * blockGrowthFactor
	}

	// Cap the geometric growth at what the remaining budget affords.
	// Requesting more would abort caching even when the exact number of
	// docs that still fit is smaller than the requested block.
	perEntry := cc.bytesPerEntry()
	budget := int((cc.maxBytes - float64(cc.bytesUsed)) / float64(perEntry))
	if next > budget {
		next = budget
	}
	if next < 1 {
		return false
	}

	cc.curDocs = make([]core.DocID, next)
	if cc.cacheScores {
		cc.curScores = make([]float32, next)
	}
	cc.bytesUsed += int64(next * perEntry)
	cc.upto = 0

	return true
}

// abort discards all recorded blocks; Collect keeps forwarding.
func (cc *CachingCollector) abort() {
	cc.cached = false
	cc.docBlocks = nil
	cc.scoreBlocks = nil
	cc.curDocs = nil
	cc.curScores = nil
	cc.upto = 0
}

func (cc *CachingCollector) bytesPerEntry() int {
	if cc.cacheScores {
		return bytesPerDoc + bytesPerScore
	}
	return bytesPerDoc
}

// replayBlock decodes the first n delta-encoded entries of a block and
// feeds them to other. The first entry of every block is absolute.
func replayBlock(other Collector, docs []core.DocID, scores []float32, n int) error {
	var doc core.DocID
	for i := 0; i < n; i++ {
		if i == 0 {
			doc = docs[0]
		} else {
			doc += docs[i]
		}
		var score float32
		if scores != nil {
			score = scores[i]
		}
		if err := other.Collect(doc, score); err != nil {
			return err
		}
	}
	return nil
}
