package sumstats

import (
	"errors"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Synonyms for each column role. The lists are drawn from Encore and PheWeb.
var (
	LogPvalueFields = []string{"log_pvalue", "log_pval", "logpvalue"}
	PvalueFields    = []string{"pvalue", "p.value", "pval", "p_score"}
	MarkerFields    = []string{"snpid", "marker", "markerid"}
	ChromFields     = []string{"chrom", "chr"}
	PosFields       = []string{"position", "pos", "begin", "beg", "bp", "end", "ps"}

	// Order matters: ambiguous names such as allele1 are considered for ref
	// before alt. Headers are lower-cased before matching, so A1 and A2 are
	// only ever one edit away.
	RefFields = []string{"A1", "ref", "reference", "allele0", "allele1"}
	AltFields = []string{"A2", "alt", "alternate", "allele1", "allele2"}
)

// Detect guesses a ColumnMapping from a header row and one or more sample data
// rows. ok is false when no sufficiently confident mapping exists, which the
// caller is expected to handle, e.g. by asking for a manual mapping.
func Detect(header []string, rows [][]string) (m ColumnMapping, ok bool) {
	return DetectWithin(header, rows, DefaultThreshold)
}

// DetectWithin is Detect with a configurable fuzzy-match threshold.
func DetectWithin(header []string, rows [][]string, threshold int) (m ColumnMapping, ok bool) {
	if len(header) == 0 || len(rows) == 0 {
		return m, false
	}

	headers := normalizeHeaders(header)
	claimed := make(columnSet)

	pvalueCol, isNegLog, ok := findPvalueColumn(headers, rows, threshold)
	if !ok {
		return m, false
	}
	claimed.claim(pvalueCol)

	loc, ok := findLocation(headers, rows, threshold, claimed)
	if !ok {
		return m, false
	}

	m = ColumnMapping{
		Location:       loc,
		PvalueCol:      pvalueCol,
		IsNegLogPvalue: isNegLog,
	}

	return m, true
}

// normalizeHeaders lower-cases the header names and removes the leading
// comment marks that many tools put in front of the first column.
func normalizeHeaders(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	out[0] = strings.TrimLeft(out[0], "#")

	return out
}

// findPvalueColumn prefers log-transformed p-values, which have not lost
// precision, over plain ones. A candidate is accepted only if every sampled
// value in it can be parsed.
func findPvalueColumn(headers []string, rows [][]string, threshold int) (col int, isNegLog bool, ok bool) {
	if col, ok := findColumn(LogPvalueFields, headers, threshold, nil); ok && validPvalues(col, rows, true) {
		return col, true, true
	}

	if col, ok := findColumn(PvalueFields, headers, threshold, nil); ok && validPvalues(col, rows, false) {
		return col, false, true
	}

	return -1, false, false
}

func validPvalues(col int, rows [][]string, isNegLog bool) bool {
	for _, row := range rows {
		if col >= len(row) {
			return false
		}
		_, err := ParsePvalueToLog(row[col], isNegLog)
		if errors.Is(err, ErrMissingValue) {
			continue
		}
		if err != nil {
			return false
		}
	}

	return true
}

// findLocation tries a single marker column first, then four distinct
// chromosome, position, ref and alt columns. Every column that is assigned a
// role is claimed, so that no column serves two roles.
func findLocation(headers []string, rows [][]string, threshold int, claimed columnSet) (Location, bool) {
	if col, ok := findColumn(MarkerFields, headers, threshold, claimed); ok && col < len(rows[0]) {
		if _, ok := MatchMarker(strings.TrimSpace(rows[0][col])); ok {
			return ByMarker{MarkerCol: col}, true
		}
	}

	roles := [][]string{ChromFields, PosFields, RefFields, AltFields}
	cols := make([]int, len(roles))

	marked := make(columnSet, len(claimed)+len(roles))
	for k := range claimed {
		marked.claim(k)
	}

	for i, synonyms := range roles {
		col, ok := findColumn(synonyms, headers, threshold, marked)
		if !ok {
			return nil, false
		}
		cols[i] = col
		marked.claim(col)
	}

	return ByCoordinates{
		ChromCol: cols[0],
		PosCol:   cols[1],
		RefCol:   null.IntFrom(int64(cols[2])),
		AltCol:   null.IntFrom(int64(cols[3])),
	}, true
}
