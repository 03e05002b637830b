package postings

import "github.com/hupe1980/lexgo/core"

// Position is one term occurrence within a document. Offsets are -1 and
// Payload nil when not indexed.
type Position struct {
	Pos         int
	StartOffset int
	EndOffset   int
	Payload     []byte
}

// Posting is one document entry of an in-memory postings list. Freq must
// be >= 1; Positions, when present, must have Freq entries.
type Posting struct {
	Doc       core.DocID
	Freq      int
	Positions []Position
}

// Compile time check to ensure ListIterator satisfies Iterator.
var _ Iterator = (*ListIterator)(nil)

// ListIterator iterates an in-memory postings list. It is the segment
// iterator used by the memory index path and by tests. The list must be
// sorted by Doc in increasing order with no duplicates.
type ListIterator struct {
	postings []Posting
	idx      int
	posUpto  int
}

// NewListIterator creates an iterator over the given postings.
func NewListIterator(postings []Posting) *ListIterator {
	return &ListIterator{
		postings: postings,
		idx:      -1,
	}
}

// NewDocsIterator creates an iterator over bare doc ids, with freq 1 and
// no positions.
func NewDocsIterator(docs []core.DocID) *ListIterator {
	postings := make([]Posting, len(docs))
	for i, doc := range docs {
		postings[i] = Posting{Doc: doc, Freq: 1}
	}
	return NewListIterator(postings)
}

// DocID implements Iterator.
func (it *ListIterator) DocID() core.DocID {
	if it.idx < 0 {
		return -1
	}
	if it.idx >= len(it.postings) {
		return core.NoMoreDocs
	}
	return it.postings[it.idx].Doc
}

// NextDoc implements Iterator.
func (it *ListIterator) NextDoc() (core.DocID, error) {
	if it.idx < len(it.postings) {
		it.idx++
	}
	it.posUpto = 0
	return it.DocID(), nil
}

// Advance implements Iterator.
func (it *ListIterator) Advance(target core.DocID) (core.DocID, error) {
	// Simple linear scan for now.
	// Optimization: use binary search or skipping if postings are large.
	for it.DocID() < target {
		if _, err := it.NextDoc(); err != nil {
			return core.NoMoreDocs, err
		}
	}
	return it.DocID(), nil
}

// Freq implements Iterator.
func (it *ListIterator) Freq() (int, error) {
	return it.postings[it.idx].Freq, nil
}

// NextPosition implements Iterator.
func (it *ListIterator) NextPosition() (int, error) {
	positions := it.postings[it.idx].Positions
	if it.posUpto >= len(positions) {
		return -1, nil
	}
	pos := positions[it.posUpto].Pos
	it.posUpto++
	return pos, nil
}

// StartOffset implements Iterator.
func (it *ListIterator) StartOffset() (int, error) {
	if pos, ok := it.currentPosition(); ok {
		return pos.StartOffset, nil
	}
	return -1, nil
}

// EndOffset implements Iterator.
func (it *ListIterator) EndOffset() (int, error) {
	if pos, ok := it.currentPosition(); ok {
		return pos.EndOffset, nil
	}
	return -1, nil
}

// Payload implements Iterator.
func (it *ListIterator) Payload() ([]byte, error) {
	if pos, ok := it.currentPosition(); ok {
		return pos.Payload, nil
	}
	return nil, nil
}

// Cost implements Iterator.
func (it *ListIterator) Cost() int64 {
	return int64(len(it.postings))
}

// currentPosition returns the position most recently returned by
// NextPosition for the current document.
func (it *ListIterator) currentPosition() (Position, bool) {
	positions := it.postings[it.idx].Positions
	if it.posUpto == 0 || it.posUpto > len(positions) {
		return Position{}, false
	}
	return positions[it.posUpto-1], true
}
