package postings

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lexgo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapIterator_NextDoc(t *testing.T) {
	bm := roaring.BitmapOf(3, 7, 100000)
	it := NewBitmapIterator(bm)

	assert.Equal(t, core.DocID(-1), it.DocID())
	assert.Equal(t, int64(3), it.Cost())

	for _, want := range []core.DocID{3, 7, 100000, core.NoMoreDocs} {
		doc, err := it.NextDoc()
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	}

	freq, err := it.Freq()
	require.NoError(t, err)
	assert.Equal(t, 1, freq)

	pos, err := it.NextPosition()
	require.NoError(t, err)
	assert.Equal(t, -1, pos)
}

func TestBitmapIterator_Advance(t *testing.T) {
	bm := roaring.BitmapOf(3, 7, 9, 50)
	it := NewBitmapIterator(bm)

	doc, err := it.Advance(4)
	require.NoError(t, err)
	assert.Equal(t, core.DocID(7), doc)

	doc, err = it.Advance(9)
	require.NoError(t, err)
	assert.Equal(t, core.DocID(9), doc)

	doc, err = it.Advance(51)
	require.NoError(t, err)
	assert.Equal(t, core.NoMoreDocs, doc)
}

func TestBitmapIterator_Merged(t *testing.T) {
	// Bitmap-backed segments merge like any other postings source.
	subs := []IteratorWithSlice{
		{Iterator: NewBitmapIterator(roaring.BitmapOf(0, 2)), Slice: ReaderSlice{Start: 0, Length: 4}},
		{Iterator: NewBitmapIterator(roaring.BitmapOf(1)), Slice: ReaderSlice{Start: 4, Length: 4}},
	}

	m := NewMergedIterator(nil, 2).Reset(subs, 2)
	assert.Equal(t, []core.DocID{0, 2, 5}, drain(t, m))
}
