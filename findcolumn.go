package sumstats

import (
	"github.com/adrg/strutil/metrics"
)

// DefaultThreshold is the largest edit distance at which a header is still
// considered a match for a synonym.
const DefaultThreshold = 2

// editDistance uses unit costs for insertion, deletion and substitution.
var editDistance = &metrics.Levenshtein{
	CaseSensitive: true,
	InsertCost:    1,
	DeleteCost:    1,
	ReplaceCost:   1,
}

// Levenshtein returns the edit distance between a and b.
func Levenshtein(a, b string) int {
	return editDistance.Distance(a, b)
}

// columnSet holds header indices that have already been assigned a role.
type columnSet map[int]struct{}

func (c columnSet) claim(i int) { c[i] = struct{}{} }

func (c columnSet) has(i int) bool {
	_, exists := c[i]
	return exists
}

// FindColumn returns the index of the header that best matches any of the
// synonyms, within DefaultThreshold edits.
func FindColumn(synonyms, headers []string) (int, bool) {
	return findColumn(synonyms, headers, DefaultThreshold, nil)
}

// FindColumnWithin is FindColumn with a configurable threshold.
func FindColumnWithin(synonyms, headers []string, threshold int) (int, bool) {
	return findColumn(synonyms, headers, threshold, nil)
}

// findColumn scores every unclaimed header by its smallest distance to any
// synonym. When two headers score the same, the earlier one wins. Unnamed
// columns are never matched.
func findColumn(synonyms, headers []string, threshold int, claimed columnSet) (int, bool) {
	bestScore := threshold + 1
	bestMatch := -1

	for i, header := range headers {
		if header == "" || claimed.has(i) {
			continue
		}

		for _, synonym := range synonyms {
			if score := Levenshtein(header, synonym); score < bestScore {
				bestScore = score
				bestMatch = i
			}
		}
	}

	return bestMatch, bestMatch >= 0
}
