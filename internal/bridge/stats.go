package bridge

import (
	"cmp"
	"slices"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
)

// KindCount is the number of nodes of one kind.
type KindCount struct {
	Kind  string
	Count int
}

// Stats summarizes a document.
type Stats struct {
	Taxonomy Taxonomy
	Bytes    int
	Nodes    int
	Depth    int
	// Kinds is ordered by descending count, then by kind.
	Kinds []KindCount
}

// Summarize computes the statistics of a decoded document whose encoded form
// took size bytes.
func Summarize(doc *Document, size int) *Stats {
	counts := doc.Counts()

	stats := &Stats{
		Taxonomy: doc.Taxonomy,
		Bytes:    size,
		Depth:    astjson.Depth(doc.Root),
		Kinds:    make([]KindCount, 0, len(counts)),
	}

	for kind, n := range counts {
		stats.Nodes += n
		stats.Kinds = append(stats.Kinds, KindCount{Kind: kind, Count: n})
	}

	slices.SortFunc(stats.Kinds, func(a, b KindCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Kind, b.Kind)
	})

	return stats
}
