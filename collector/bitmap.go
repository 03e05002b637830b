package collector

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lexgo/core"
)

// Compile time check to ensure BitmapCollector satisfies Collector.
var _ Collector = (*BitmapCollector)(nil)

// BitmapCollector accumulates matching doc ids into a roaring bitmap.
// Scores are discarded. Delivery order is irrelevant, so it accepts
// out-of-order collection.
type BitmapCollector struct {
	bm *roaring.Bitmap
}

// NewBitmapCollector creates an empty BitmapCollector.
func NewBitmapCollector() *BitmapCollector {
	return &BitmapCollector{bm: roaring.New()}
}

// Collect implements Collector.
func (c *BitmapCollector) Collect(doc core.DocID, _ float32) error {
	c.bm.Add(uint32(doc))
	return nil
}

// AcceptsDocsOutOfOrder implements Collector.
func (c *BitmapCollector) AcceptsDocsOutOfOrder() bool {
	return true
}

// Bitmap returns the accumulated doc id set. The bitmap is owned by the
// collector; callers must stop collecting before reading it.
func (c *BitmapCollector) Bitmap() *roaring.Bitmap {
	return c.bm
}
