package postings

import (
	"testing"

	"github.com/hupe1980/lexgo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIterator_Basic(t *testing.T) {
	it := NewDocsIterator([]core.DocID{2, 5, 9})

	assert.Equal(t, core.DocID(-1), it.DocID())
	assert.Equal(t, int64(3), it.Cost())

	for _, want := range []core.DocID{2, 5, 9, core.NoMoreDocs, core.NoMoreDocs} {
		doc, err := it.NextDoc()
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	}
}

func TestListIterator_Advance(t *testing.T) {
	tests := []struct {
		name   string
		target core.DocID
		want   core.DocID
	}{
		{name: "before first", target: 1, want: 2},
		{name: "exact", target: 5, want: 5},
		{name: "in gap", target: 6, want: 9},
		{name: "past end", target: 10, want: core.NoMoreDocs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewDocsIterator([]core.DocID{2, 5, 9})
			doc, err := it.Advance(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc)
		})
	}
}

func TestListIterator_Positions(t *testing.T) {
	it := NewListIterator([]Posting{
		{Doc: 3, Freq: 2, Positions: []Position{
			{Pos: 0, StartOffset: 0, EndOffset: 5, Payload: []byte("x")},
			{Pos: 9, StartOffset: 40, EndOffset: 46},
		}},
		{Doc: 4, Freq: 1},
	})

	doc, err := it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, core.DocID(3), doc)

	freq, err := it.Freq()
	require.NoError(t, err)
	assert.Equal(t, 2, freq)

	// Offsets and payload refer to the position last returned.
	start, err := it.StartOffset()
	require.NoError(t, err)
	assert.Equal(t, -1, start)

	pos, err := it.NextPosition()
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	payload, err := it.Payload()
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), payload)

	pos, err = it.NextPosition()
	require.NoError(t, err)
	assert.Equal(t, 9, pos)

	end, err := it.EndOffset()
	require.NoError(t, err)
	assert.Equal(t, 46, end)

	// Positions exhausted for this doc.
	pos, err = it.NextPosition()
	require.NoError(t, err)
	assert.Equal(t, -1, pos)

	// Advancing the doc resets the position cursor.
	doc, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, core.DocID(4), doc)

	pos, err = it.NextPosition()
	require.NoError(t, err)
	assert.Equal(t, -1, pos)

	payload, err = it.Payload()
	require.NoError(t, err)
	assert.Nil(t, payload)
}
