package bridge

import (
	"cmp"
	"slices"
	"strings"
)

const maxSuggestions = 3

// Suggest returns up to three registered kinds of the taxonomy that are
// spelled like kind, closest first. Case is ignored when comparing.
func Suggest(t Taxonomy, kind string) []string {
	if kind == "" {
		return nil
	}

	target := strings.ToLower(kind)
	limit := max(2, len([]rune(target))/3)

	type candidate struct {
		kind     string
		distance int
	}

	var d distance

	var found []candidate

	for _, known := range t.Registry().Kinds() {
		dist := d.between(target, strings.ToLower(known))
		if dist <= limit && known != kind {
			found = append(found, candidate{kind: known, distance: dist})
		}
	}

	slices.SortFunc(found, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.distance, b.distance), strings.Compare(a.kind, b.kind))
	})

	suggestions := make([]string, 0, min(len(found), maxSuggestions))
	for _, c := range found[:min(len(found), maxSuggestions)] {
		suggestions = append(suggestions, c.kind)
	}

	return suggestions
}

// distance computes Levenshtein edit distances over runes, reusing one row
// between calls.
type distance struct {
	row []int
}

func (d *distance) between(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(rb) == 0 {
		return len(ra)
	}

	if cap(d.row) < len(ra)+1 {
		d.row = make([]int, len(ra)+1)
	}

	row := d.row[:len(ra)+1]
	for i := range row {
		row[i] = i
	}

	for j, cb := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ca := range ra {
			above := row[i+1]

			cost := 1
			if ca == cb {
				cost = 0
			}

			row[i+1] = min(above+1, row[i]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}
