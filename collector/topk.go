package collector

import "github.com/hupe1980/lexgo/core"

// ScoredDoc is a document paired with its score.
type ScoredDoc struct {
	Doc   core.DocID
	Score float32
}

// Compile time check to ensure TopKCollector satisfies Collector.
var _ Collector = (*TopKCollector)(nil)

// TopKCollector keeps the k best-scored hits of a pass in a bounded,
// value-based min-heap. The heap root is the current worst kept hit, so
// a full heap rejects weaker hits with a single comparison. Order of
// delivery is irrelevant to the result, so it accepts out-of-order
// collection.
type TopKCollector struct {
	k     int
	items []ScoredDoc
}

// NewTopKCollector creates a collector keeping the k best hits.
func NewTopKCollector(k int) *TopKCollector {
	return &TopKCollector{
		k:     k,
		items: make([]ScoredDoc, 0, k),
	}
}

// Collect implements Collector.
func (c *TopKCollector) Collect(doc core.DocID, score float32) error {
	item := ScoredDoc{Doc: doc, Score: score}
	if len(c.items) < c.k {
		c.items = append(c.items, item)
		c.siftUp(len(c.items) - 1)
		return nil
	}
	if c.k > 0 && c.less(c.items[0], item) {
		c.items[0] = item
		c.siftDown(0)
	}
	return nil
}

// AcceptsDocsOutOfOrder implements Collector.
func (c *TopKCollector) AcceptsDocsOutOfOrder() bool {
	return true
}

// Len returns how many hits are currently kept.
func (c *TopKCollector) Len() int {
	return len(c.items)
}

// TopDocs drains the heap and returns the kept hits in descending score
// order (ties broken by ascending doc id). The collector is empty
// afterwards.
func (c *TopKCollector) TopDocs() []ScoredDoc {
	result := make([]ScoredDoc, len(c.items))
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = c.items[0]
		last := len(c.items) - 1
		c.items[0] = c.items[last]
		c.items = c.items[:last]
		c.siftDown(0)
	}
	return result
}

// less reports whether a is a worse hit than b.
func (c *TopKCollector) less(a, b ScoredDoc) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Doc > b.Doc
}

func (c *TopKCollector) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !c.less(c.items[i], c.items[parent]) {
			break
		}
		c.items[i], c.items[parent] = c.items[parent], c.items[i]
		i = parent
	}
}

func (c *TopKCollector) siftDown(i int) {
	n := len(c.items)
	for {
		smallest := i
		if l := 2*i + 1; l < n && c.less(c.items[l], c.items[smallest]) {
			smallest = l
		}
		if r := 2*i + 2; r < n && c.less(c.items[r], c.items[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		c.items[i], c.items[smallest] = c.items[smallest], c.items[i]
		i = smallest
	}
}
