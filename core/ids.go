package core

import "math"

// DocID is a document identifier. Within a segment it is segment-local;
// after merging it addresses the unified doc space spanning all segments.
// It is strictly 32-bit, allowing for max 2 Billion documents per index.
// Used for all hot-path structures (postings, cache blocks, heaps).
type DocID int32

// NoMoreDocs is the terminal sentinel returned by iterators once exhausted.
// All calls after exhaustion keep returning it.
const NoMoreDocs DocID = math.MaxInt32

// SegmentID is the unique identifier for a segment within an index.
type SegmentID uint64
