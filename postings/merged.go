package postings

import (
	"fmt"

	"github.com/hupe1980/lexgo/core"
)

// Compile time check to ensure MergedIterator satisfies Iterator.
var _ Iterator = (*MergedIterator)(nil)

// MergedIterator exposes the postings of a term scattered across
// independently-built segments as a single iterator over the composite
// doc space. Sub-iterators are consumed strictly in slice order; each
// local doc is translated by its slice start.
//
// Instances are pooled per owner and rebound with Reset between terms,
// avoiding a per-term allocation.
type MergedIterator struct {
	owner       any
	subs        []IteratorWithSlice
	numSubs     int
	upto        int
	current     Iterator
	currentBase core.DocID
	doc         core.DocID
}

// NewMergedIterator creates a MergedIterator able to merge up to
// subReaderCount segments. owner identifies the pooling context for
// CanReuse; identity comparison only.
func NewMergedIterator(owner any, subReaderCount int) *MergedIterator {
	return &MergedIterator{
		owner: owner,
		subs:  make([]IteratorWithSlice, subReaderCount),
		doc:   -1,
	}
}

// Reset rebinds the iterator to the first numSubs entries of subs and
// rewinds the cursor. It returns the receiver for chaining.
func (m *MergedIterator) Reset(subs []IteratorWithSlice, numSubs int) *MergedIterator {
	m.numSubs = numSubs
	copy(m.subs[:numSubs], subs[:numSubs])
	m.upto = -1
	m.doc = -1
	m.current = nil
	m.currentBase = 0
	return m
}

// CanReuse reports whether this instance was created for the given
// owning context and may be rebound with Reset instead of reallocated.
func (m *MergedIterator) CanReuse(owner any) bool {
	return m.owner == owner
}

// NumSubs returns how many sub-iterators are being merged.
func (m *MergedIterator) NumSubs() int {
	return m.numSubs
}

// Subs returns the sub-iterators being merged. Only the first NumSubs
// entries are valid.
func (m *MergedIterator) Subs() []IteratorWithSlice {
	return m.subs
}

// DocID implements Iterator.
func (m *MergedIterator) DocID() core.DocID {
	return m.doc
}

// NextDoc implements Iterator.
func (m *MergedIterator) NextDoc() (core.DocID, error) {
	for {
		if m.current == nil {
			if m.upto == m.numSubs-1 {
				m.doc = core.NoMoreDocs
				return m.doc, nil
			}
			m.upto++
			m.current = m.subs[m.upto].Iterator
			m.currentBase = m.subs[m.upto].Slice.Start
		}

		doc, err := m.current.NextDoc()
		if err != nil {
			return core.NoMoreDocs, err
		}
		if doc != core.NoMoreDocs {
			m.doc = m.currentBase + doc
			return m.doc, nil
		}
		m.current = nil
	}
}

// Advance implements Iterator. target must be greater than the last
// returned doc.
func (m *MergedIterator) Advance(target core.DocID) (core.DocID, error) {
	for {
		if m.current != nil {
			var doc core.DocID
			var err error
			if target < m.currentBase {
				// target was in the previous slice but there was no
				// matching doc after it; a negative local target is
				// undefined for the sub-iterator.
				doc, err = m.current.NextDoc()
			} else {
				doc, err = m.current.Advance(target - m.currentBase)
			}
			if err != nil {
				return core.NoMoreDocs, err
			}
			if doc == core.NoMoreDocs {
				m.current = nil
			} else {
				m.doc = doc + m.currentBase
				return m.doc, nil
			}
		} else if m.upto == m.numSubs-1 {
			m.doc = core.NoMoreDocs
			return m.doc, nil
		} else {
			m.upto++
			m.current = m.subs[m.upto].Iterator
			m.currentBase = m.subs[m.upto].Slice.Start
		}
	}
}

// Freq implements Iterator by delegating to the active sub-iterator.
func (m *MergedIterator) Freq() (int, error) {
	return m.current.Freq()
}

// NextPosition implements Iterator by delegating to the active sub-iterator.
func (m *MergedIterator) NextPosition() (int, error) {
	return m.current.NextPosition()
}

// StartOffset implements Iterator by delegating to the active sub-iterator.
func (m *MergedIterator) StartOffset() (int, error) {
	return m.current.StartOffset()
}

// EndOffset implements Iterator by delegating to the active sub-iterator.
func (m *MergedIterator) EndOffset() (int, error) {
	return m.current.EndOffset()
}

// Payload implements Iterator by delegating to the active sub-iterator.
func (m *MergedIterator) Payload() ([]byte, error) {
	return m.current.Payload()
}

// Cost implements Iterator as the sum of all active sub-iterators' costs.
func (m *MergedIterator) Cost() int64 {
	var cost int64
	for i := 0; i < m.numSubs; i++ {
		cost += m.subs[i].Iterator.Cost()
	}
	return cost
}

// String returns a string representation of the MergedIterator.
func (m *MergedIterator) String() string {
	return fmt.Sprintf("MergedIterator(%v)", m.subs[:m.numSubs])
}
