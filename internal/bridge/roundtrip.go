package bridge

import (
	"context"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RoundTrip is the outcome of translating a document there and back.
type RoundTrip struct {
	// Original is the input re-encoded in its own taxonomy, so that member
	// order and number formatting match Returned.
	Original []byte
	// Translated is the document in the other taxonomy.
	Translated []byte
	// Returned is the translation translated back.
	Returned []byte
}

// Equal reports whether the document survived the round trip unchanged.
func (r *RoundTrip) Equal() bool {
	return string(r.Original) == string(r.Returned)
}

// RoundTrip translates doc to the other taxonomy and back.
func (t *Translator) RoundTrip(ctx context.Context, doc *Document) (*RoundTrip, error) {
	original, err := doc.Encode()
	if err != nil {
		return nil, err
	}

	there, err := t.Translate(ctx, doc)
	if err != nil {
		return nil, err
	}

	translated, err := there.Encode()
	if err != nil {
		return nil, err
	}

	back, err := t.Translate(ctx, there)
	if err != nil {
		return nil, fmt.Errorf("translate back: %w", err)
	}

	returned, err := back.Encode()
	if err != nil {
		return nil, err
	}

	return &RoundTrip{Original: original, Translated: translated, Returned: returned}, nil
}

// LineDiff compares two texts line by line.
func LineDiff(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)

	return dmp.DiffCharsToLines(diffs, lines)
}
