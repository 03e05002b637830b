package collector

import "github.com/hupe1980/lexgo/core"

// Collector is the downstream sink of a collection pass. The executor
// calls Collect once per matching document, in increasing doc order
// unless the collector declares it tolerates out-of-order delivery.
//
// Collectors are not safe for concurrent use; a single pass drives each
// instance from one goroutine.
type Collector interface {
	// Collect accepts one matching document and its score. Collectors
	// that do not score ignore the score argument.
	Collect(doc core.DocID, score float32) error

	// AcceptsDocsOutOfOrder reports whether this collector tolerates
	// documents delivered in an order other than increasing doc id.
	AcceptsDocsOutOfOrder() bool
}

// Compile time check to ensure NoopCollector satisfies Collector.
var _ Collector = (*NoopCollector)(nil)

// NoopCollector discards every hit. It carries an explicit out-of-order
// tolerance so it can stand in for a real sink, e.g. when a
// CachingCollector is used purely as a recorder.
type NoopCollector struct {
	outOfOrder bool
}

// NewNoopCollector creates a NoopCollector with the given out-of-order
// tolerance.
func NewNoopCollector(acceptDocsOutOfOrder bool) *NoopCollector {
	return &NoopCollector{outOfOrder: acceptDocsOutOfOrder}
}

// Collect implements Collector.
func (c *NoopCollector) Collect(core.DocID, float32) error {
	return nil
}

// AcceptsDocsOutOfOrder implements Collector.
func (c *NoopCollector) AcceptsDocsOutOfOrder() bool {
	return c.outOfOrder
}
