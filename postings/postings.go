package postings

import (
	"fmt"

	"github.com/hupe1980/lexgo/core"
)

// Iterator enumerates the documents of one segment that match a term,
// in increasing doc order, together with per-document frequency and
// optional position/offset/payload data.
//
// The cursor starts unpositioned (DocID() == -1). NextDoc and Advance
// return core.NoMoreDocs once exhausted and keep returning it on every
// later call. Iterators are not safe for concurrent use.
type Iterator interface {
	// DocID returns the current document, -1 before the first call to
	// NextDoc/Advance, or core.NoMoreDocs after exhaustion.
	DocID() core.DocID

	// NextDoc advances to the next document and returns it.
	NextDoc() (core.DocID, error)

	// Advance moves to the first document >= target and returns it.
	// target must be greater than the last returned doc; callers own
	// that precondition, it is not checked on the hot path.
	Advance(target core.DocID) (core.DocID, error)

	// Freq returns the term frequency in the current document.
	Freq() (int, error)

	// NextPosition returns the next term position in the current
	// document, or -1 if positions are not indexed or are exhausted.
	NextPosition() (int, error)

	// StartOffset returns the start offset of the current position,
	// or -1 if offsets are not indexed.
	StartOffset() (int, error)

	// EndOffset returns the end offset of the current position,
	// or -1 if offsets are not indexed.
	EndOffset() (int, error)

	// Payload returns the payload of the current position, or nil.
	Payload() ([]byte, error)

	// Cost returns an estimate of the number of documents this iterator
	// will visit. Query planners use it to order execution.
	Cost() int64
}

// ReaderSlice describes how one segment's local doc space fits into the
// composite doc space: local ids map to Start+local. Immutable once
// assigned to a merge.
type ReaderSlice struct {
	Start  core.DocID
	Length uint32
}

// String returns a string representation of the ReaderSlice.
func (s ReaderSlice) String() string {
	return fmt.Sprintf("slice(start=%d,length=%d)", s.Start, s.Length)
}

// IteratorWithSlice pairs a segment iterator with the slice describing
// where that segment sits in the composite doc space. The iterator is
// referenced, not owned; it stays owned by the index-reading layer.
type IteratorWithSlice struct {
	Iterator Iterator
	Slice    ReaderSlice
}

// String returns a string representation of the IteratorWithSlice.
func (s IteratorWithSlice) String() string {
	return fmt.Sprintf("%s:%v", s.Slice, s.Iterator)
}
