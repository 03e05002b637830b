package postings

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lexgo/core"
)

// Compile time check to ensure BitmapIterator satisfies Iterator.
var _ Iterator = (*BitmapIterator)(nil)

// BitmapIterator exposes a roaring bitmap of doc ids as a postings
// iterator. Frequency is 1 for every document; positions are not
// available. Doc ids above core.NoMoreDocs-1 must not be present.
type BitmapIterator struct {
	it   roaring.IntPeekable
	cost int64
	doc  core.DocID
}

// NewBitmapIterator creates an iterator over the given bitmap. The
// bitmap must not be mutated while the iterator is in use.
func NewBitmapIterator(bm *roaring.Bitmap) *BitmapIterator {
	return &BitmapIterator{
		it:   bm.Iterator(),
		cost: int64(bm.GetCardinality()),
		doc:  -1,
	}
}

// DocID implements Iterator.
func (it *BitmapIterator) DocID() core.DocID {
	return it.doc
}

// NextDoc implements Iterator.
func (it *BitmapIterator) NextDoc() (core.DocID, error) {
	if !it.it.HasNext() {
		it.doc = core.NoMoreDocs
		return it.doc, nil
	}
	it.doc = core.DocID(it.it.Next())
	return it.doc, nil
}

// Advance implements Iterator.
func (it *BitmapIterator) Advance(target core.DocID) (core.DocID, error) {
	it.it.AdvanceIfNeeded(uint32(target))
	return it.NextDoc()
}

// Freq implements Iterator.
func (it *BitmapIterator) Freq() (int, error) {
	return 1, nil
}

// NextPosition implements Iterator. Bitmaps carry no positions.
func (it *BitmapIterator) NextPosition() (int, error) {
	return -1, nil
}

// StartOffset implements Iterator.
func (it *BitmapIterator) StartOffset() (int, error) {
	return -1, nil
}

// EndOffset implements Iterator.
func (it *BitmapIterator) EndOffset() (int, error) {
	return -1, nil
}

// Payload implements Iterator.
func (it *BitmapIterator) Payload() ([]byte, error) {
	return nil, nil
}

// Cost implements Iterator.
func (it *BitmapIterator) Cost() int64 {
	return it.cost
}
