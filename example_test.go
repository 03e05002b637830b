package lexgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/lexgo"
	"github.com/hupe1980/lexgo/collector"
	"github.com/hupe1980/lexgo/core"
	"github.com/hupe1980/lexgo/postings"
)

// Example_mergedIterator demonstrates iterating a term's postings across
// two segments as one composite enumeration.
func Example_mergedIterator() {
	subs := []postings.IteratorWithSlice{
		{
			Iterator: postings.NewDocsIterator([]core.DocID{1, 4}),
			Slice:    postings.ReaderSlice{Start: 0, Length: 10},
		},
		{
			Iterator: postings.NewDocsIterator([]core.DocID{0, 3}),
			Slice:    postings.ReaderSlice{Start: 10, Length: 10},
		},
	}

	m := postings.NewMergedIterator(nil, len(subs)).Reset(subs, len(subs))
	for {
		doc, err := m.NextDoc()
		if err != nil {
			log.Fatal(err)
		}
		if doc == core.NoMoreDocs {
			break
		}
		fmt.Println(doc)
	}
	// Output:
	// 1
	// 4
	// 10
	// 13
}

// Example_cachingCollector demonstrates recording a collection pass and
// replaying it into a second sink without re-running the query.
func Example_cachingCollector() {
	segments := []lexgo.SegmentSource{
		{
			Iterator: postings.NewDocsIterator([]core.DocID{2, 5}),
			Slice:    postings.ReaderSlice{Start: 0, Length: 8},
		},
		{
			Iterator: postings.NewDocsIterator([]core.DocID{1}),
			Slice:    postings.ReaderSlice{Start: 8, Length: 8},
		},
	}

	cc := collector.NewCachingCollector(collector.NewNoopCollector(false), false, 1<<20)

	exec := lexgo.NewExecutor()
	if err := exec.Collect(context.Background(), segments, cc); err != nil {
		log.Fatal(err)
	}

	bitmap := collector.NewBitmapCollector()
	if err := exec.Replay(context.Background(), cc, bitmap); err != nil {
		log.Fatal(err)
	}

	fmt.Println(bitmap.Bitmap().GetCardinality())
	// Output: 3
}
