package sumstats

import (
	"regexp"
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// markerPattern recognizes single-token variant identifiers such as 1:123,
// chr1:123_A/C, chr1:123:A:C, chr1-123-A-C and 20:123_G/A_Synonymous:SIRPG.
// Capture groups: chromosome, position, ref, alt, suffix. It is anchored at
// the start so that a marker embedded in free text is not recognized.
var markerPattern = regexp.MustCompile(`^(?:chr)?([a-zA-Z0-9]+?)[:_-](\d+)(?:[:_|-]?([^_/:|\s-]+))?(?:[/:|_-]?([^_\s]+))?(?:_(.*))?`)

// Marker is the decomposition of a marker token. Ref and Alt are null when the
// token only carries a chromosome and position.
type Marker struct {
	Chromosome string
	Position   uint64
	Ref        null.String
	Alt        null.String
	Suffix     string
}

// MatchMarker applies the marker grammar to s. It never fails loudly; ok is
// false if s is not a marker. This is the form used when probing candidate
// columns.
func MatchMarker(s string) (m Marker, ok bool) {
	match := markerPattern.FindStringSubmatch(s)
	if match == nil {
		return m, false
	}

	pos, err := strconv.ParseUint(match[2], 10, 64)
	if err != nil {
		return m, false
	}

	m.Chromosome = match[1]
	m.Position = pos
	m.Ref = null.NewString(match[3], match[3] != "")
	m.Alt = null.NewString(match[4], match[4] != "")
	m.Suffix = match[5]

	return m, true
}

// ParseMarker is MatchMarker, but reports a *MarkerFormatError when s is not a
// marker.
func ParseMarker(s string) (Marker, error) {
	m, ok := MatchMarker(s)
	if !ok {
		return m, &MarkerFormatError{Marker: s}
	}

	return m, nil
}

// Variant returns the canonical variant identifier of the marker.
func (m Marker) Variant() string {
	return FormatVariant(m.Chromosome, m.Position, m.Ref, m.Alt)
}
