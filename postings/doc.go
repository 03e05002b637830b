// Package postings provides per-segment document iteration and
// multi-segment merging for a lexical search index.
//
// # Iteration Protocol
//
// An Iterator walks the documents matching one term within one segment,
// in increasing doc order. NextDoc and Advance return core.NoMoreDocs
// once exhausted. Frequency, positions, offsets and payloads are read
// from the current document.
//
// # Merging
//
// MergedIterator presents the postings of a term that is physically
// scattered across independently-built segments as a single iterator
// over the composite doc space. Sub-iterators are paired with a
// ReaderSlice giving their offset in the composite space and are
// consumed strictly in slice order. Instances are pooled and rebound
// with Reset to avoid per-term allocation:
//
//	m := postings.NewMergedIterator(owner, len(segments))
//	m.Reset(subs, len(subs))
//	for doc, _ := m.NextDoc(); doc != core.NoMoreDocs; doc, _ = m.NextDoc() {
//	    ...
//	}
//
// # Implementations
//
//   - ListIterator: in-memory postings with positions/offsets/payloads
//   - PackedList: varint delta block, optional LZ4/ZSTD compression
//   - BitmapIterator: postings view over a roaring bitmap
//
// Iterators are not safe for concurrent use; drive each instance from a
// single goroutine.
package postings
